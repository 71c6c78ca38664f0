package main

import (
	"os"

	"git.arvados.org/arvados.git/lib/cmd"
)

var (
	handler = cmd.Multi(map[string]cmd.Handler{
		"version":   cmd.Version,
		"-version":  cmd.Version,
		"--version": cmd.Version,

		"info":         &info{},
		"pack":         &packer{},
		"unpack":       &unpacker{},
		"content":      &content{},
		"translate":    &translator{},
		"edit":         &editor{},
		"map":          &mapper{},
		"export-numpy": &exportNumpy{},
		"diff":         &diffFasta{},
	})
)

func main() {
	os.Exit(handler.RunCommand(os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
