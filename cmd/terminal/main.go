package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hamidzr/gwidgets/component"
	"github.com/hamidzr/gwidgets/core"
	"github.com/hamidzr/gwidgets/model"
)

func main() {
	changes := 0
	in := component.NewInput(component.InputProps{
		Label:        "Password",
		Kind:         model.InputPassword,
		Clearable:    true,
		DefaultValue: "hunter2",
		OnChange:     func(string) { changes++ },
	})

	fmt.Println("Tab shows or hides the password, Ctrl+U clears it, Enter accepts.")
	result, err := core.ReadTerminalInput(in, "Password: ")
	if err != nil {
		fmt.Printf("\nInput ended: %v\n", err)
		code, _ := model.ExitCodeFromError(err)
		os.Exit(int(code))
	}

	state := in.State()
	fmt.Printf("Accepted %d characters after %d edits: %s\n", len(result), changes, strings.Repeat("•", len([]rune(result))))
	if state.PasswordVisible {
		fmt.Println("The password was left visible.")
	}
}
