/*
Demonstration driver for the engine math layer. It loads an optional
TOML config, runs a handful of vector, matrix and quaternion operations
and prints the results.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/engineutils/engine/core"
	"github.com/spaghettifunk/engineutils/engine/math"
)

var (
	configPath string
	watch      bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "engineutils",
		Short: "Exercise the engine math layer",
		Long: `engineutils runs a short demonstration of the engine math layer:
vector arithmetic, matrix products, 4x4 transforms and quaternion rotation.

With --watch the program keeps running and re-applies the config file
whenever it changes, until interrupted.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the config file on change")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		core.LogFatal("engineutils: %s", err)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg := core.DefaultConfig()
	if configPath != "" {
		loaded, err := core.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.Apply(); err != nil {
		return err
	}

	clock := core.NewClock()
	clock.Start()
	demo(out)
	clock.Stop()
	core.LogInfo("demo finished in %s, %d fallbacks taken", clock.Elapsed(), core.MetricsFallbacks().Total())

	if !watch {
		return nil
	}
	if configPath == "" {
		return fmt.Errorf("--watch requires --config")
	}
	return watchConfig(ctx)
}

func demo(out io.Writer) {
	v := math.NewVec2(3, 4).Add(math.NewVec2(1, 2))
	fmt.Fprintf(out, "vec2 sum:        %s\n", v)

	c := math.NewVec3(1, 0, 0).Cross(math.NewVec3(0, 1, 0))
	fmt.Fprintf(out, "vec3 cross:      %s\n", c)

	m2 := math.NewMat2(1, 2, 3, 4).Mul(math.NewMat2(5, 6, 7, 8))
	fmt.Fprintf(out, "mat2 product:    %s\n", m2)

	m3 := math.NewMat3Identity().MulScalar(2)
	fmt.Fprintf(out, "mat3 2·I:        %s\n", m3)

	var m4 math.Mat4
	m4.SetScale(2, 3, 4)
	fmt.Fprintf(out, "mat4 scaled:     %s\n", m4.TransformPoint(math.NewVec3One()))

	q := math.NewQuatFromAxisAngle(math.NewVec3Up(), math.K_HALF_PI, false)
	fmt.Fprintf(out, "quat rotate:     %s\n", q.Rotate(math.NewVec3(1, 0, 0)))

	l := math.QuatLerp(math.NewQuatIdentity(), q, 0.5)
	fmt.Fprintf(out, "quat lerp:       %s\n", l)
	fmt.Fprintf(out, "quat slerp:      %s\n", math.NewQuatIdentity().Slerp(q, 0.5))

	inv := math.NewMat4Translation(math.NewVec3(1, 2, 3)).Mul(q.ToMat4()).Inverse()
	fmt.Fprintf(out, "mat4 inverse:    %s\n", inv)
}

func watchConfig(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	w, err := core.NewConfigWatcher(configPath, func(_ *core.Config) {
		core.LogInfo("log level %s, fallback policy %s", core.LogLevel(), core.CurrentFallbackPolicy())
	})
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	core.LogInfo("watching %s for changes", configPath)

	for {
		select {
		case <-ctx.Done():
			return w.Close()
		case err := <-w.Errors():
			core.LogWarn("config watcher: %v", err)
		}
	}
}
