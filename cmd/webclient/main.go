//go:build wasm

// Command webclient is the browser half of userpanel. Build with
// GOOS=js GOARCH=wasm and serve next to wasm_exec.js.
package main

import (
	"syscall/js"

	"github.com/tinywasm/userpanel"
)

func main() {
	doc := js.Global().Get("document")
	mount := func() {
		if _, err := userpanel.Mount(); err != nil {
			js.Global().Get("console").Call("error", err.Error())
		}
	}
	if doc.Get("readyState").String() == "loading" {
		var ready js.Func
		ready = js.FuncOf(func(this js.Value, args []js.Value) any {
			mount()
			ready.Release()
			return nil
		})
		doc.Call("addEventListener", "DOMContentLoaded", ready)
	} else {
		mount()
	}
	select {}
}
