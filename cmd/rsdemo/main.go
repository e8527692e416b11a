package main

import (
	rsblock "github.com/doismellburning/rsblock/src"
)

func main() {
	rsblock.DemoMain()
}
