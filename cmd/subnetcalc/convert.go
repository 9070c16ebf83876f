package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ccnalabs/subnetcalc"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between address representations",
}

var bin2decCmd = &cobra.Command{
	Use:     "bin2dec <binary>",
	Short:   "Convert a 32-bit binary string to dotted decimal",
	Example: "  subnetcalc convert bin2dec 11000000101010000000000100000001",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		decimal, err := subnetcalc.BinaryToDecimal(args[0])
		if err != nil {
			log.WithError(err).Fatal("Conversion failed")
		}
		fmt.Println(decimal)
	},
}

var dec2binCmd = &cobra.Command{
	Use:     "dec2bin <address>",
	Short:   "Convert a dotted-decimal address to its 32-bit binary string",
	Example: "  subnetcalc convert dec2bin 192.168.1.1",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		binary, err := subnetcalc.DecimalToBinary(args[0])
		if err != nil {
			log.WithError(err).Fatal("Conversion failed")
		}
		fmt.Println(binary)
	},
}

var compressCmd = &cobra.Command{
	Use:     "compress <ipv6-address>",
	Short:   "Compress an IPv6 address to canonical form",
	Example: "  subnetcalc convert compress 2001:0db8:0000:0042:0000:8a2e:0370:7334",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		compressed, err := subnetcalc.CompressIPv6(args[0])
		if err != nil {
			log.WithError(err).Fatal("Compression failed")
		}
		fmt.Println(compressed)
	},
}

var expandCmd = &cobra.Command{
	Use:     "expand <ipv6-address>",
	Short:   "Expand an IPv6 address to its full eight-hextet form",
	Example: "  subnetcalc convert expand 2001:db8::1",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		expanded, err := subnetcalc.DecompressIPv6(args[0])
		if err != nil {
			log.WithError(err).Fatal("Expansion failed")
		}
		fmt.Println(expanded)
	},
}

var maskCmd = &cobra.Command{
	Use:     "mask <prefix-length>",
	Short:   "Render the dotted-decimal mask for a prefix length",
	Example: "  subnetcalc convert mask 26",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prefix, err := strconv.Atoi(args[0])
		if err != nil {
			log.WithError(err).Fatal("Invalid prefix length")
		}
		mask, err := subnetcalc.SubnetMask(prefix)
		if err != nil {
			log.WithError(err).Fatal("Conversion failed")
		}
		fmt.Println(mask)
	},
}

func init() {
	convertCmd.AddCommand(bin2decCmd)
	convertCmd.AddCommand(dec2binCmd)
	convertCmd.AddCommand(compressCmd)
	convertCmd.AddCommand(expandCmd)
	convertCmd.AddCommand(maskCmd)
	rootCmd.AddCommand(convertCmd)
}
