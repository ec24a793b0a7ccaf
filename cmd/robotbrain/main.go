// Command robotbrain runs a demo supervisor against a team of canned
// agents. It exists to exercise a full configuration end to end:
//
//	robotbrain -config robotbrain.yaml -query "calculate 2 + 2"
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ScientiaCapital/robot-brain/config"
	"github.com/ScientiaCapital/robot-brain/memory"
	"github.com/ScientiaCapital/robot-brain/supervisor"
	"github.com/ScientiaCapital/robot-brain/types"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	query := flag.String("query", "calculate 2 + 2", "query to delegate")
	parallel := flag.Bool("parallel", false, "dispatch selected agents in parallel")
	flag.Parse()

	if err := run(*configPath, *query, *parallel); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath, query string, parallel bool) error {
	cfg, err := config.NewLoader().WithConfigPath(configPath).Load()
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	catalog, err := cfg.Routing.Catalog()
	if err != nil {
		return err
	}

	opts := []supervisor.Option{
		supervisor.WithLogger(logger),
		supervisor.WithCatalog(catalog),
	}
	if cfg.Supervisor.MemoryEnabled {
		provider, err := buildHistory(cfg)
		if err != nil {
			return err
		}
		opts = append(opts, supervisor.WithHistory(provider))
	}

	brain, err := supervisor.New(cfg.Supervisor.ToSupervisorConfig(), demoAgents(), opts...)
	if err != nil {
		return err
	}

	result := brain.Execute(context.Background(), query, supervisor.ExecuteOptions{Parallel: parallel})
	logger.Info("delegation finished",
		zap.String("status", string(result.Status)),
		zap.Strings("agents", result.AgentsInvolved))

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func buildHistory(cfg *config.Config) (memory.HistoryProvider, error) {
	switch cfg.Memory.Backend {
	case config.MemoryBackendMemory, "":
		return memory.NewInMemoryHistory(cfg.Memory.MaxTurns), nil
	default:
		// Redis and database backends need live infrastructure; the demo
		// sticks to the in-process provider.
		return nil, fmt.Errorf("demo supports only the %q memory backend, got %q",
			config.MemoryBackendMemory, cfg.Memory.Backend)
	}
}

func demoAgents() []types.Agent {
	return []types.Agent{
		types.AgentFunc("RoboNerd", func(_ context.Context, query string) (string, error) {
			return "According to my calculations, the answer is clear.", nil
		}),
		types.AgentFunc("RoboZen", func(_ context.Context, _ string) (string, error) {
			return "Breathe in. Breathe out. The answer was within you all along.", nil
		}),
		types.ReplyAgentFunc("RoboDrama", func(_ context.Context, _ string) (*types.Reply, error) {
			return &types.Reply{
				Response:    "A tale for the ages begins...",
				HandoffTo:   "RoboPirate",
				HandoffTask: "finish the tale with a sea shanty",
			}, nil
		}),
		types.AgentFunc("RoboPirate", func(_ context.Context, _ string) (string, error) {
			return "Yo ho ho, and the treasure be knowledge!", nil
		}),
		types.AgentFunc("RoboFriend", func(_ context.Context, _ string) (string, error) {
			return "You're doing great! Happy to help.", nil
		}),
	}
}
