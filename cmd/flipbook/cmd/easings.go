package cmd

import (
	"fmt"

	"github.com/go-drift/flipbook/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "easings",
		Short: "List easing curves",
		Long: `List every easing curve accepted in scene files.

Each curve is shown with its eased value at a quarter, half and three
quarters of the way through a transition. Values outside 0..1 overshoot
the destination.`,
		Usage: "flipbook easings",
		Run:   runEasings,
	})
}

func runEasings(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("easings takes no arguments")
	}
	fmt.Fprintf(stdout, "%-18s %7s %7s %7s\n", "NAME", "0.25", "0.50", "0.75")
	for _, e := range animation.Easings() {
		marker := ""
		if e == animation.DefaultEasing {
			marker = " (default)"
		}
		fmt.Fprintf(stdout, "%-18s %7.3f %7.3f %7.3f%s\n", e, e.Ease(0.25), e.Ease(0.5), e.Ease(0.75), marker)
	}
	return nil
}
