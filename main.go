package main

import "github.com/avoronin/bmrcalc/cmd/bmrcalc"

func main() {
	bmrcalc.Execute()
}
