package cmd

import (
	"fmt"

	"github.com/go-drift/tween/pkg/easing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "list",
		Short: "List easing curves",
		Long: `List the registered easing curve names in registry order.

Any of these names can be passed to sample, plot, or used as curveName in
tween.yaml. Unknown names fall back to ` + easing.DefaultName + `.`,
		Usage: "tween list",
		Run:   runList,
	})
}

func runList(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("list takes no arguments")
	}
	for _, name := range easing.Names() {
		fmt.Fprintln(stdout, name)
	}
	return nil
}
