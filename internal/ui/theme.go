package ui

import "image/color"

var (
	colFieldTop    = color.RGBA{20, 20, 30, 255}
	colFieldBottom = color.RGBA{10, 10, 14, 255}
	colAxis        = color.RGBA{60, 60, 60, 255}

	colStartNode   = color.RGBA{40, 200, 40, 255}
	colEndNode     = color.RGBA{200, 40, 40, 255}
	colConnectNode = color.RGBA{0, 200, 255, 255}
	colNodeActive  = color.RGBA{255, 255, 0, 255}

	colBlock      = color.RGBA{120, 120, 130, 255}
	colLine       = color.RGBA{240, 240, 240, 255}
	colLineMirror = color.RGBA{140, 140, 160, 255}

	colText    = color.RGBA{230, 230, 230, 255}
	colOverlay = color.RGBA{0, 0, 0, 170}
)
