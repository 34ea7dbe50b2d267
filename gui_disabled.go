//go:build !gui

package main

func initGUI() {
	panic("keyhint: built without GUI support (rebuild with -tags gui)")
}
