// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/grpc-tls-endpoint/src/endpoint"
	"github.com/H0llyW00dzZ/grpc-tls-endpoint/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/grpc-tls-endpoint/src/logger"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/connectivity"
)

var (
	propertiesFile string
	jsonOutput     bool
	tableOutput    bool
	dialEndpoint   bool
	dialTimeout    time.Duration
)

// OperationPerformed reports whether an endpoint was described during the
// current invocation. OperationPerformedSuccessfully additionally reports
// that the invocation finished without error.
var (
	OperationPerformed             bool
	OperationPerformedSuccessfully bool
)

// Execute runs the root command and returns any error that occurs during
// execution. The provided context cancels an in-flight dial check when the
// process receives an interrupt signal.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false

	rootCmd := &cobra.Command{
		Use:     posix.GetExecutableName() + " [ENDPOINT_URL]",
		Short:   "gRPC TLS endpoint descriptor builder",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execCli(cmd, args, log)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&propertiesFile, "properties", "p", "", "connection properties file (JSON or YAML)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the descriptor as JSON")
	rootCmd.Flags().BoolVar(&tableOutput, "table", false, "print the descriptor as a markdown table")
	rootCmd.Flags().BoolVar(&dialEndpoint, "dial", false, "dial the endpoint and wait for the channel to become ready")
	rootCmd.Flags().DurationVar(&dialTimeout, "timeout", 10*time.Second, "dial readiness timeout (with --dial)")

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		OperationPerformedSuccessfully = OperationPerformed
	}
	return err
}

// execCli builds the endpoint descriptor from the URL argument and the
// optional properties file, renders it in the requested format, and
// optionally dials the endpoint to verify connectivity.
func execCli(cmd *cobra.Command, args []string, log logger.Logger) error {
	endpointURL := args[0]

	props, err := loadProperties(propertiesFile)
	if err != nil {
		return err
	}

	ep, err := endpoint.New(endpointURL, props, endpoint.WithLogger(log))
	if err != nil {
		return fmt.Errorf("cli: failed to build endpoint descriptor: %w", err)
	}
	OperationPerformed = true

	output, err := renderEndpoint(ep)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output)

	if dialEndpoint {
		if err := verifyDial(cmd.Context(), ep, log); err != nil {
			return err
		}
	}

	return nil
}

// verifyDial opens a client connection to the endpoint and waits until the
// channel reports Ready or the timeout elapses.
func verifyDial(ctx context.Context, ep *endpoint.Endpoint, log logger.Logger) error {
	conn, err := ep.Dial()
	if err != nil {
		return fmt.Errorf("cli: failed to dial %s: %w", ep.Target(), err)
	}
	defer conn.Close()

	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			log.Printf("Endpoint %s is reachable.", ep.Target())
			return nil
		}
		if !conn.WaitForStateChange(dialCtx, state) {
			return fmt.Errorf("cli: endpoint %s did not become ready within %s (last state: %s)",
				ep.Target(), dialTimeout, state)
		}
	}
}
