// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/grpc-tls-endpoint/src/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"
)

// reservedOptionNames are handled by protocol-level configuration during
// assembly and must never be re-invoked through the generic registry.
var reservedOptionNames = map[string]struct{}{
	"forAddress": {},
	"build":      {},
}

// channelBuilder accumulates the transport configuration for one endpoint:
// transport credentials from the trust pipeline, keepalive parameters from
// channel options, and any further dial options the registry produced.
type channelBuilder struct {
	target string
	creds  credentials.TransportCredentials
	ka     *keepalive.ClientParameters
	opts   []grpc.DialOption
}

// newChannelBuilder creates a builder for the given host:port target.
func newChannelBuilder(host string, port int) *channelBuilder {
	return &channelBuilder{target: fmt.Sprintf("%s:%d", host, port)}
}

// keepaliveParams returns the keepalive parameter block, allocating it on
// first use so endpoints without keepalive options add no dial option at all.
func (b *channelBuilder) keepaliveParams() *keepalive.ClientParameters {
	if b.ka == nil {
		b.ka = &keepalive.ClientParameters{}
	}
	return b.ka
}

// build finalizes the accumulated configuration into dial options.
func (b *channelBuilder) build() []grpc.DialOption {
	opts := []grpc.DialOption{grpc.WithTransportCredentials(b.creds)}
	if b.ka != nil {
		opts = append(opts, grpc.WithKeepaliveParams(*b.ka))
	}
	return append(opts, b.opts...)
}

// optionSetter applies one named capability to the builder.
type optionSetter func(b *channelBuilder, value any) error

// channelOptions is the capability registry: option name to typed setter.
// Names not present here fail fast as unsupported; there is no reflective
// fallback, so a dropped option can never silently no-op.
var channelOptions = map[string]optionSetter{
	"keepAliveTime": func(b *channelBuilder, v any) error {
		d, err := durationValue(v)
		if err != nil {
			return err
		}
		b.keepaliveParams().Time = d
		return nil
	},
	"keepAliveTimeout": func(b *channelBuilder, v any) error {
		d, err := durationValue(v)
		if err != nil {
			return err
		}
		b.keepaliveParams().Timeout = d
		return nil
	},
	"keepAliveWithoutCalls": func(b *channelBuilder, v any) error {
		enabled, err := boolValue(v)
		if err != nil {
			return err
		}
		b.keepaliveParams().PermitWithoutStream = enabled
		return nil
	},
	"maxInboundMessageSize": func(b *channelBuilder, v any) error {
		n, err := intValue(v)
		if err != nil {
			return err
		}
		b.opts = append(b.opts, grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(n)))
		return nil
	},
	"userAgent": func(b *channelBuilder, v any) error {
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		b.opts = append(b.opts, grpc.WithUserAgent(s))
		return nil
	},
	"authority": func(b *channelBuilder, v any) error {
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		b.opts = append(b.opts, grpc.WithAuthority(s))
		return nil
	},
	"initialWindowSize": func(b *channelBuilder, v any) error {
		n, err := int32Value(v)
		if err != nil {
			return err
		}
		b.opts = append(b.opts, grpc.WithInitialWindowSize(n))
		return nil
	},
	"initialConnWindowSize": func(b *channelBuilder, v any) error {
		n, err := int32Value(v)
		if err != nil {
			return err
		}
		b.opts = append(b.opts, grpc.WithInitialConnWindowSize(n))
		return nil
	},
	"readBufferSize": func(b *channelBuilder, v any) error {
		n, err := intValue(v)
		if err != nil {
			return err
		}
		b.opts = append(b.opts, grpc.WithReadBufferSize(n))
		return nil
	},
	"writeBufferSize": func(b *channelBuilder, v any) error {
		n, err := intValue(v)
		if err != nil {
			return err
		}
		b.opts = append(b.opts, grpc.WithWriteBufferSize(n))
		return nil
	},
	"idleTimeout": func(b *channelBuilder, v any) error {
		d, err := durationValue(v)
		if err != nil {
			return err
		}
		b.opts = append(b.opts, grpc.WithIdleTimeout(d))
		return nil
	},
	"defaultLoadBalancingPolicy": func(b *channelBuilder, v any) error {
		s, err := stringValue(v)
		if err != nil {
			return err
		}
		b.opts = append(b.opts, grpc.WithDefaultServiceConfig(
			fmt.Sprintf(`{"loadBalancingConfig":[{%q:{}}]}`, s)))
		return nil
	},
}

// applyChannelOptions dispatches every property key carrying the channel
// option prefix into the capability registry. Keys are walked in sorted order
// so a misconfiguration always surfaces the same offending option. Reserved
// names are skipped; unknown names and setter failures abort construction.
func applyChannelOptions(b *channelBuilder, props Properties, log logger.Logger) error {
	keys := make([]string, 0, len(props))
	for key := range props {
		if strings.HasPrefix(key, ChannelOptionPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		name := strings.TrimSpace(strings.TrimPrefix(key, ChannelOptionPrefix))
		if name == "" {
			continue
		}
		if _, ok := reservedOptionNames[name]; ok {
			continue
		}

		setter, ok := channelOptions[name]
		if !ok {
			return &OptionError{Name: name, Err: ErrUnsupportedOption}
		}
		if err := setter(b, props[key]); err != nil {
			return &OptionError{Name: name, Err: fmt.Errorf("%w: %v", ErrOptionInvocation, err)}
		}

		log.Printf("endpoint %s set channel builder option %s (%v)", b.target, name, props[key])
	}

	return nil
}

// timeUnits maps the unit names accepted in two-element duration arguments
// to their multipliers. Both the original transport's enum constant names and
// Go-style suffixes are recognized.
var timeUnits = map[string]time.Duration{
	"NANOSECONDS":  time.Nanosecond,
	"MICROSECONDS": time.Microsecond,
	"MILLISECONDS": time.Millisecond,
	"SECONDS":      time.Second,
	"MINUTES":      time.Minute,
	"HOURS":        time.Hour,
	"ns":           time.Nanosecond,
	"us":           time.Microsecond,
	"ms":           time.Millisecond,
	"s":            time.Second,
	"m":            time.Minute,
	"h":            time.Hour,
}

// durationValue coerces an option argument into a duration. Accepted forms:
// a time.Duration, a string for time.ParseDuration, or a two-element slice
// of (numeric value, unit name) mirroring the (long, TimeUnit) argument pair
// configurations written against the original transport carry.
func durationValue(v any) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", d)
		}
		return parsed, nil
	case []any:
		if len(d) != 2 {
			return 0, fmt.Errorf("duration argument list must be (value, unit), got %d values", len(d))
		}
		n, err := int64Value(d[0])
		if err != nil {
			return 0, err
		}
		unitName, ok := d[1].(string)
		if !ok {
			return 0, fmt.Errorf("duration unit must be a string, got %T", d[1])
		}
		unit, ok := timeUnits[unitName]
		if !ok {
			return 0, fmt.Errorf("unknown time unit %q", unitName)
		}
		return time.Duration(n) * unit, nil
	}
	return 0, fmt.Errorf("cannot use %T as a duration", v)
}

// int64Value coerces boxed numeric forms into an int64. Floats are accepted
// only when whole, so values deserialized from JSON keep working.
func int64Value(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case float32:
		if float32(int64(n)) != n {
			return 0, fmt.Errorf("non-integral numeric value %v", n)
		}
		return int64(n), nil
	case float64:
		if float64(int64(n)) != n {
			return 0, fmt.Errorf("non-integral numeric value %v", n)
		}
		return int64(n), nil
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", n)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("cannot use %T as an integer", v)
}

// intValue coerces boxed numeric forms into an int.
func intValue(v any) (int, error) {
	n, err := int64Value(v)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// int32Value coerces boxed numeric forms into an int32, rejecting values
// outside the int32 range rather than truncating them.
func int32Value(v any) (int32, error) {
	n, err := int64Value(v)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("value %d out of int32 range", n)
	}
	return int32(n), nil
}

// boolValue coerces a boolean argument, accepting the string forms the
// property set uses on the wire.
func boolValue(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch b {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, fmt.Errorf("invalid boolean %q", b)
	}
	return false, fmt.Errorf("cannot use %T as a boolean", v)
}

// stringValue requires a string argument.
func stringValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("cannot use %T as a string", v)
	}
	return s, nil
}
