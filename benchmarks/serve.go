package benchmarks

import (
	"github.com/spf13/cobra"

	"github.com/joefarrington/or-gym/envserver"
)

func ServeCommand() *cobra.Command {
	var variant string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an environment instance over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := envOverrides()
			if err != nil {
				return err
			}
			env, err := newEnv(variant, overrides)
			if err != nil {
				return err
			}
			return envserver.NewServer(env).Run(addr)
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "bounded", "Environment variant to serve (unbounded, bounded, online)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return cmd
}
