// Command qcad runs Lua drawing scripts and exports the resulting
// document as SVG or PNG.
package main

func main() {
	Execute()
}
