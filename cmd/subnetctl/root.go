package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "subnetctl",
		Short: "IP subnet membership testing from the command line",
		Example: `	subnetctl check --ip 192.168.182.1 192.168.182.0/24
	subnetctl check --all --ip 192.168.182.1 192.168.182.0/24 192.168.182.1/32
	subnetctl check --ip 192.168.182.1 --ip 192.168.182.2 192.168.181.0/24 192.168.182.2/32`,
		SilenceUsage: true,
	}

	root.AddCommand(newCheckCmd())
	return root
}
