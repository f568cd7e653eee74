package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show the resolved scene",
		Long: `Show the scene that trace and render would play.

Displays the scene name, file, canvas size, initial rectangle and the
ordered list of steps with engine defaults applied.`,
		Usage: "flipbook status [--scene FILE]",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	opts, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	if len(opts.rest) > 0 {
		return fmt.Errorf("unknown flag %q", opts.rest[0])
	}

	scene, err := loadScene(opts)
	if err != nil {
		return err
	}

	module := scene.ModulePath
	if module == "" {
		module = "(none)"
	}
	fmt.Fprintf(stdout, "Scene:   %s\n", scene.SceneName)
	fmt.Fprintf(stdout, "File:    %s\n", scene.Path)
	fmt.Fprintf(stdout, "Module:  %s\n", module)
	fmt.Fprintf(stdout, "Canvas:  %dx%d (x%d)\n", scene.Width, scene.Height, scene.Scale)
	if scene.Initial != nil {
		fmt.Fprintf(stdout, "Initial: %v\n", *scene.Initial)
	} else {
		fmt.Fprintln(stdout, "Initial: unset")
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Steps:")
	if len(scene.Steps) == 0 {
		fmt.Fprintln(stdout, "  (none)")
	}
	for i, step := range scene.Steps {
		fmt.Fprintf(stdout, "  %2d. %v\n", i+1, step)
	}
	return nil
}
