package main

import (
	"context"

	"restaurant-locator/cmd/locator-cli/commands"
	"restaurant-locator/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "locator-cli")
	commands.ExecuteContext(context.Background())
}
