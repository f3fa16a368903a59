package main

import (
	"fmt"
	"os"

	"github.com/callummcdougall/jupyter-to-anki/internal/core"
)

func CheckConfig() {
	err := core.CurrentConfig().Check()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
