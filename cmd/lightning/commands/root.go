// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package commands implements the lightning command tree.
package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lightning/dispatch"
	"github.com/ajroetker/go-lightning/gates"
	"github.com/ajroetker/go-lightning/internal/config"
	"github.com/ajroetker/go-lightning/internal/logging"
	"github.com/ajroetker/go-lightning/internal/workerpool"
	"github.com/ajroetker/go-lightning/kernels"
)

const version = "0.1.0"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7B68EE"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7FFF00"))
)

// app holds what every subcommand shares. It is filled in by the root
// command's PersistentPreRunE, after flags are parsed.
type app struct {
	cfg  *config.Config
	log  *logrus.Logger
	pool *workerpool.Pool
}

// Execute runs the lightning command with os.Args.
func Execute() error {
	root, a := newRootCmd()
	defer a.close()
	return root.Execute()
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	var cfgFile string

	root := &cobra.Command{
		Use:   "lightning",
		Short: "Inspect and exercise the state-vector kernel registry",
		Long: `Lightning builds the gate, generator and matrix kernel registry of the
state-vector simulator and lets you query it or apply small circuits to a
basis state with a chosen kernel.

Settings come from defaults, an optional YAML file (--config), LIGHTNING_*
environment variables and flags, in increasing order of precedence.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	config.AddFlags(root.PersistentFlags())

	root.AddCommand(
		newKernelsCmd(a),
		newOpsCmd(a),
		newApplyCmd(a),
		newGeneratorCmd(a),
		newVerifyCmd(a),
		newVersionCmd(),
	)
	return root, a
}

func (a *app) init(cmd *cobra.Command, cfgFile string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.pool = workerpool.New(cfg.LM.Workers)
	log.WithFields(logrus.Fields{
		"kernel":    cfg.Kernel,
		"precision": cfg.Precision,
		"workers":   a.pool.NumWorkers(),
	}).Debug("configuration loaded")
	return nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// newDispatcher returns a sealed dispatcher with every built-in kernel.
func newDispatcher[C dispatch.Complex, P dispatch.Precision](a *app) *dispatch.Dispatcher[C, P] {
	d := dispatch.New[C, P](dispatch.WithLogger(a.log))
	kernels.Bootstrap(d, kernels.Builtin[C, P](a.pool, a.cfg.LM.ParallelThreshold)...)
	return d
}

// kernelChoice is the configured kernel. With auto set, every operation is
// dispatched to the preferred kernel that implements it.
type kernelChoice[C dispatch.Complex, P dispatch.Precision] struct {
	d     *dispatch.Dispatcher[C, P]
	log   logrus.FieldLogger
	auto  bool
	fixed gates.KernelType
}

// preferred is the kernel used for listings: the fixed kernel, or the
// fastest kernel registered in d.
func (c kernelChoice[C, P]) preferred() gates.KernelType {
	if c.auto {
		return kernels.Select(c.d)
	}
	return c.fixed
}

func (c kernelChoice[C, P]) gate(op gates.GateOperation) gates.KernelType {
	if !c.auto {
		return c.fixed
	}
	return c.picked(op, kernels.SelectGate(c.d, op))
}

func (c kernelChoice[C, P]) generator(op gates.GeneratorOperation) gates.KernelType {
	if !c.auto {
		return c.fixed
	}
	return c.picked(op, kernels.SelectGenerator(c.d, op))
}

func (c kernelChoice[C, P]) matrix(op gates.MatrixOperation) gates.KernelType {
	if !c.auto {
		return c.fixed
	}
	return c.picked(op, kernels.SelectMatrix(c.d, op))
}

func (c kernelChoice[C, P]) picked(op fmt.Stringer, k gates.KernelType) gates.KernelType {
	c.log.WithFields(logrus.Fields{"op": op, "kernel": k}).Debug("kernel selected")
	return k
}

// kernelFor resolves the configured kernel against d.
func kernelFor[C dispatch.Complex, P dispatch.Precision](a *app, d *dispatch.Dispatcher[C, P]) (kernelChoice[C, P], error) {
	c := kernelChoice[C, P]{d: d, log: a.log}
	if a.cfg.Kernel == "auto" {
		c.auto = true
		return c, nil
	}
	k, ok := gates.ParseKernelType(a.cfg.Kernel)
	if !ok {
		return c, fmt.Errorf("unknown kernel %q", a.cfg.Kernel)
	}
	if _, err := d.KernelName(k); err != nil {
		return c, err
	}
	c.fixed = k
	return c, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// The root PersistentPreRunE is not needed to print a version.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lightning v%s\n", version)
		},
	}
}
