package main

import (
	"fmt"
	"net/netip"

	"github.com/spf13/cobra"

	"github.com/subnetcheck/subnetcheck/internal/match"
)

func newCheckCmd() *cobra.Command {
	var (
		ips []string
		all bool
	)
	c := &cobra.Command{
		Use:   "check [flags] SUBNET...",
		Short: "Check whether addresses fall within CIDR subnets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, subnets []string) error {
			if all && len(ips) > 1 {
				return fmt.Errorf("--all works with a single --ip")
			}

			addrs := make([]netip.Addr, 0, len(ips))
			for _, ip := range ips {
				addr, err := netip.ParseAddr(ip)
				if err != nil {
					return fmt.Errorf("invalid address %q: %w", ip, err)
				}
				addrs = append(addrs, addr)
			}

			var (
				matched bool
				err     error
			)
			switch {
			case all:
				matched, err = match.AddrInAllSubnets(addrs[0], subnets)
			case len(addrs) == 1:
				matched, err = match.AddrInAnySubnet(addrs[0], subnets)
			default:
				matched, err = match.AnyAddrInAnySubnet(addrs, subnets)
			}
			if err != nil {
				return err
			}

			if matched {
				cmd.Println("match")
			} else {
				cmd.Println("no match")
			}
			return nil
		},
	}

	c.Flags().StringSliceVar(&ips, "ip", nil, "IP address to check (repeatable)")
	_ = c.MarkFlagRequired("ip")

	c.Flags().BoolVar(&all, "all", false, "require the address to be in every subnet")

	return c
}
