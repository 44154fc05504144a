package config

import (
	"flag"
	"strings"
)

// listFlag collects a comma-separated flag value into a string list.
// It implements the flag.Value interface.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(s string) error {
	*l = nil
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l = append(*l, item)
		}
	}
	return nil
}

// parseFlags parses configuration flags from args (without the program
// name) into an [Input].
//
// Flags:
//
//	-modules configuration module directory
//	-entry entry-point module name
//	-root project root directory
//	-deps project dependency directories, comma-separated
//	-remote git remote URL
//	-data scenario data directory
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-backend backend storage base URL
//	-topics event topics, comma-separated
//	-index element index backend (memory or sqlite)
//	-index-dsn element index DSN
func parseFlags(args []string) (*Input, error) {
	var in Input
	var deps, topics listFlag

	fs := flag.NewFlagSet("emissor-data", flag.ContinueOnError)
	fs.StringVar(&in.ModulesDir, "modules", "", "Configuration module directory")
	fs.StringVar(&in.Entry, "entry", "", "Entry-point module name")
	fs.StringVar(&in.ProjectRoot, "root", "", "Project root directory")
	fs.Var(&deps, "deps", "Project dependency directories, comma-separated")
	fs.StringVar(&in.GitRemote, "remote", "", "Git remote URL")
	fs.StringVar(&in.DataPath, "data", "", "Scenario data directory")
	fs.StringVar(&in.ServerAddress, "a", "", "Net address host:port")
	fs.StringVar(&in.RequestTimeout, "request-timeout", "", "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&in.BackendURL, "backend", "", "Backend storage base URL")
	fs.Var(&topics, "topics", "Event topics, comma-separated")
	fs.StringVar(&in.IndexBackend, "index", "", "Element index backend (memory or sqlite)")
	fs.StringVar(&in.IndexDSN, "index-dsn", "", "Element index DSN")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	in.ProjectDependencies = deps
	in.EventTopics = topics

	return &in, nil
}
