// Command motionplancli is a bring-up tool for exercising the trajectory
// facade end to end against a real config file, without embedding it in
// a full chassis controller.
package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.viam.com/trajectorycore/config"
	"go.viam.com/trajectorycore/kinematics"
	"go.viam.com/trajectorycore/logging"
	"go.viam.com/trajectorycore/trajectory"
)

func main() {
	app := &cli.App{
		Name:  "motionplancli",
		Usage: "exercise the trajectory core from the command line",
		Commands: []*cli.Command{
			planCommand(),
			constVelCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadParams(configPath string) (config.Parameters, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	params, err := config.Load(configPath)
	if err != nil {
		return config.Parameters{}, err
	}
	return *params, nil
}

func planCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "run generate_point_to_point and print a sampled PVT table",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Value: "0,0,0", Usage: "initial pose x,y,a"},
			&cli.StringFlag{Name: "to", Required: true, Usage: "target pose x,y,a"},
			&cli.StringFlag{Name: "config", Usage: "path to a solver.yaml config file"},
			&cli.BoolFlag{Name: "fine", Usage: "use fine-mode limits"},
			&cli.IntFlag{Name: "samples", Value: 20, Usage: "number of rows to print"},
			&cli.StringFlag{Name: "log-file", Usage: "also write logs to this rotating file"},
			&cli.IntFlag{Name: "log-max-size-mb", Value: 10, Usage: "rotate --log-file after it reaches this size"},
		},
		Action: func(c *cli.Context) error {
			params, err := loadParams(c.String("config"))
			if err != nil {
				return err
			}
			from, err := parsePoint(c.String("from"))
			if err != nil {
				return errors.Wrap(err, "parsing --from")
			}
			to, err := parsePoint(c.String("to"))
			if err != nil {
				return errors.Wrap(err, "parsing --to")
			}

			logger, closeLogger := buildLogger(c)
			defer closeLogger()
			facade := trajectory.NewFacade(params, logger)
			if !facade.GeneratePointToPoint(from, to, c.Bool("fine")) {
				return errors.Wrapf(facade.LastError(), "generate_point_to_point(%+v, %+v) failed", from, to)
			}

			printTable(facade, sampleTimes(facade, c.Int("samples")))
			return nil
		},
	}
}

func constVelCommand() *cli.Command {
	return &cli.Command{
		Name:  "const-vel",
		Usage: "run generate_const_vel and print a sampled PVT table",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Value: "0,0,0", Usage: "initial pose x,y,a"},
			&cli.Float64Flag{Name: "vx", Usage: "target x velocity (m/s)"},
			&cli.Float64Flag{Name: "vy", Usage: "target y velocity (m/s)"},
			&cli.Float64Flag{Name: "va", Usage: "target angular velocity (rad/s)"},
			&cli.Float64Flag{Name: "duration", Required: true, Usage: "move_time (s)"},
			&cli.StringFlag{Name: "config", Usage: "path to a solver.yaml config file"},
			&cli.BoolFlag{Name: "fine", Usage: "use fine-mode limits"},
			&cli.IntFlag{Name: "samples", Value: 20, Usage: "number of rows to print"},
			&cli.StringFlag{Name: "log-file", Usage: "also write logs to this rotating file"},
			&cli.IntFlag{Name: "log-max-size-mb", Value: 10, Usage: "rotate --log-file after it reaches this size"},
		},
		Action: func(c *cli.Context) error {
			params, err := loadParams(c.String("config"))
			if err != nil {
				return err
			}
			from, err := parsePoint(c.String("from"))
			if err != nil {
				return errors.Wrap(err, "parsing --from")
			}

			velocity := kinematics.Velocity{VX: c.Float64("vx"), VY: c.Float64("vy"), VA: c.Float64("va")}
			logger, closeLogger := buildLogger(c)
			defer closeLogger()
			facade := trajectory.NewFacade(params, logger)
			if !facade.GenerateConstVel(from, velocity, c.Float64("duration"), c.Bool("fine")) {
				return errors.Wrapf(facade.LastError(), "generate_const_vel(%+v) failed", velocity)
			}
			if warning := facade.LastWarning(); warning != "" {
				fmt.Fprintln(os.Stderr, "warning:", warning)
			}

			printTable(facade, sampleTimes(facade, c.Int("samples")))
			return nil
		},
	}
}

// buildLogger assembles the CLI's logger: always a console appender on
// stdout, plus a rotating file appender when --log-file is set. The
// returned close func flushes and closes any file appender and must be
// deferred by the caller.
func buildLogger(c *cli.Context) (logging.Logger, func()) {
	appenders := []logging.Appender{logging.NewStdoutAppender()}
	closeFn := func() {}

	if path := c.String("log-file"); path != "" {
		appender, closer := logging.NewRotatingFileAppender(path, c.Int("log-max-size-mb"))
		appenders = append(appenders, appender)
		closeFn = func() { closer.Close() }
	}

	return logging.NewLogger("motionplancli", appenders...), closeFn
}

func sampleTimes(facade *trajectory.Facade, samples int) []float64 {
	if samples < 2 {
		samples = 2
	}
	end := facade.Duration()
	times := make([]float64, samples)
	for i := range times {
		times[i] = end * float64(i) / float64(samples-1)
	}
	return times
}

func printTable(facade *trajectory.Facade, times []float64) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"t", "x", "y", "a", "vx", "vy", "va"})
	for _, tm := range times {
		pvt := facade.Lookup(tm)
		t.AppendRow(table.Row{
			fmt.Sprintf("%.3f", pvt.Time),
			fmt.Sprintf("%.4f", pvt.Position.X),
			fmt.Sprintf("%.4f", pvt.Position.Y),
			fmt.Sprintf("%.4f", pvt.Position.A),
			fmt.Sprintf("%.4f", pvt.Velocity.VX),
			fmt.Sprintf("%.4f", pvt.Velocity.VY),
			fmt.Sprintf("%.4f", pvt.Velocity.VA),
		})
	}
	t.Render()
}

func parsePoint(s string) (kinematics.Point, error) {
	var x, y, a float64
	n, err := fmt.Sscanf(s, "%f,%f,%f", &x, &y, &a)
	if err != nil || n != 3 {
		return kinematics.Point{}, errors.Errorf("expected x,y,a, got %q", s)
	}
	return kinematics.Point{X: x, Y: y, A: a}, nil
}
