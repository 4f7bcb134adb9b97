// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/grpc-tls-endpoint/src/endpoint"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// endpointSummary is the JSON shape of a described endpoint.
type endpointSummary struct {
	URL               string `json:"url"`
	Host              string `json:"host"`
	Port              int    `json:"port"`
	Protocol          string `json:"protocol"`
	Target            string `json:"target"`
	AuthorityOverride string `json:"authorityOverride,omitempty"`
	MutualTLS         bool   `json:"mutualTLS"`
	ClientCertDigest  string `json:"clientCertDigest,omitempty"`
}

// renderEndpoint formats a described endpoint in the output mode selected by
// the command-line flags. Plain text is the default; --json and --table select
// the other modes.
func renderEndpoint(ep *endpoint.Endpoint) (string, error) {
	summary := summarize(ep)

	switch {
	case jsonOutput:
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return "", fmt.Errorf("cli: failed to marshal endpoint summary: %w", err)
		}
		return string(data) + "\n", nil
	case tableOutput:
		return renderTable(summary), nil
	default:
		return renderPlain(summary), nil
	}
}

func summarize(ep *endpoint.Endpoint) endpointSummary {
	s := endpointSummary{
		URL:               ep.URL(),
		Host:              ep.Host(),
		Port:              ep.Port(),
		Protocol:          ep.Protocol(),
		Target:            ep.Target(),
		AuthorityOverride: ep.AuthorityOverride(),
		MutualTLS:         ep.MutualTLS(),
	}
	if digest := ep.ClientTLSCertificateDigest(); digest != nil {
		s.ClientCertDigest = hex.EncodeToString(digest)
	}
	return s
}

// renderTable renders the summary as a markdown table.
func renderTable(s endpointSummary) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"Field", "Value"})
	table.Bulk(summaryRows(s))
	table.Render()
	return buf.String()
}

// renderPlain renders the summary as aligned key/value text.
func renderPlain(s endpointSummary) string {
	var buf strings.Builder
	for _, row := range summaryRows(s) {
		fmt.Fprintf(&buf, "%-18s %s\n", row[0]+":", row[1])
	}
	return buf.String()
}

func summaryRows(s endpointSummary) [][]string {
	rows := [][]string{
		{"URL", s.URL},
		{"Host", s.Host},
		{"Port", strconv.Itoa(s.Port)},
		{"Protocol", s.Protocol},
		{"Target", s.Target},
		{"Mutual TLS", strconv.FormatBool(s.MutualTLS)},
	}
	if s.AuthorityOverride != "" {
		rows = append(rows, []string{"Authority", s.AuthorityOverride})
	}
	if s.ClientCertDigest != "" {
		rows = append(rows, []string{"Client Digest", s.ClientCertDigest})
	}
	return rows
}
