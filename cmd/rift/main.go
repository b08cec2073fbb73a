// Command rift is a small console for a RiftDB endpoint: it pings the server
// and runs raw query expressions.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	rift "github.com/riftdb/rift-go"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "ping":
		pingCmd(os.Args[2:])
	case "query":
		queryCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `rift CLI

Usage:
  rift ping  [-config rift.yaml] [-endpoint URL] [-secret S] [-scope node]
  rift query [-config rift.yaml] [-endpoint URL] [-secret S] [-e EXPR-JSON]

query reads the expression from -e, or from stdin when -e is empty.`)
}

type config struct {
	Endpoint string `yaml:"endpoint"`
	Secret   string `yaml:"secret"`
}

type connFlags struct {
	configPath string
	endpoint   string
	secret     string
	verbose    bool
}

func registerConnFlags(fs *flag.FlagSet) *connFlags {
	cf := &connFlags{}
	fs.StringVar(&cf.configPath, "config", "", "YAML config file with endpoint and secret")
	fs.StringVar(&cf.endpoint, "endpoint", "", "endpoint base URL (overrides config)")
	fs.StringVar(&cf.secret, "secret", "", "auth secret (overrides config)")
	fs.BoolVar(&cf.verbose, "verbose", false, "log every request/response to stderr")
	return cf
}

func (cf *connFlags) client() *rift.Client {
	cfg := config{}
	if cf.configPath != "" {
		data, err := os.ReadFile(cf.configPath)
		if err != nil {
			fatalf("read config: %v", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fatalf("parse config: %v", err)
		}
	}
	if cf.endpoint != "" {
		cfg.Endpoint = cf.endpoint
	}
	if cf.secret != "" {
		cfg.Secret = cf.secret
	}

	opts := []rift.ClientOption{}
	if cfg.Endpoint != "" {
		opts = append(opts, rift.Endpoint(cfg.Endpoint))
	}
	if cf.verbose {
		opts = append(opts, rift.Observer(rift.LogObserver(func(s string) {
			fmt.Fprint(os.Stderr, s)
		})))
	}
	return rift.NewClient(cfg.Secret, opts...)
}

func pingCmd(args []string) {
	fs := flag.NewFlagSet("ping", flag.ExitOnError)
	cf := registerConnFlags(fs)
	var scope string
	fs.StringVar(&scope, "scope", "", "ping scope (node, all, ...)")
	_ = fs.Parse(args)

	c := cf.client()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	v, err := c.Ping(ctx, scope, 0)
	if err != nil {
		fatalf("ping: %v", err)
	}
	printValue(v)
}

func queryCmd(args []string) {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	cf := registerConnFlags(fs)
	var exprJSON string
	fs.StringVar(&exprJSON, "e", "", "query expression as wire JSON")
	_ = fs.Parse(args)

	src := []byte(exprJSON)
	if exprJSON == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("read stdin: %v", err)
		}
		src = data
	}
	expr, err := rift.Decode(src)
	if err != nil {
		fatalf("bad expression: %v", err)
	}

	c := cf.client()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	v, err := c.Query(ctx, expr)
	if err != nil {
		fatalf("query: %v", err)
	}
	printValue(v)
}

func printValue(v any) {
	out, err := rift.EncodeIndent(v)
	if err != nil {
		fatalf("render result: %v", err)
	}
	fmt.Println(string(out))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "rift: "+format+"\n", args...)
	os.Exit(1)
}
