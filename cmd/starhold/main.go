// Package main is the entry point for the starhold combat demo. It
// replays the reference engagement between two fleets; all rules live
// under internal/.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/akelleher/starhold/internal/entity"
	"github.com/akelleher/starhold/internal/game"
	"github.com/akelleher/starhold/internal/logging"
	"github.com/akelleher/starhold/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	logging.Init()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Demo will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	runScenario(ctx)
}

// runScenario replays the reference engagement: an outpost and three
// cruisers per side, a mobilisation, partial docking, a skirmish and a
// repair, then fleet attacks until one starbase falls.
func runScenario(ctx context.Context) {
	player1 := entity.NewFleet("Player1")
	player1.AddEntity(entity.NewDefaultStarbase(1))

	player2 := entity.NewFleet("Player2")
	player2.AddEntity(entity.NewDefaultStarbase(2))

	for i := 0; i < 3; i++ {
		player1.AddEntity(entity.NewDefaultStarship(1))
		player2.AddEntity(entity.NewDefaultStarship(2))
	}

	engine := game.New(game.Config{}, player1, player2)

	// Move player 1's ships into player 2's sector.
	engine.RunRound(ctx, func() { player1.Mobilise(2) })

	// Dock two of player 2's ships at their starbase.
	player2Base := player2.GetStarbases()[0]
	var dockOrders []game.Order
	for _, ship := range player2.GetAvailableShips()[:2] {
		dockOrders = append(dockOrders, func() { ship.Dock(player2Base) })
	}
	engine.RunRound(ctx, dockOrders...)

	// Skirmish: player 1's lead ship fires twice on the exposed ship.
	player1Ship := player1.GetAvailableShips()[0]
	player2Ship := player2.GetAvailableShips()[0]
	engine.RunRound(ctx,
		func() { player1Ship.Attack(player2Ship) },
		func() { player1Ship.Attack(player2Ship) },
	)

	// The damaged ship retreats to the starbase for repairs.
	engine.RunRound(ctx,
		func() { player2Ship.Dock(player2Base) },
		func() { player2Ship.Repair() },
	)

	// Fleet attacks until the starbase goes down, taking every docked
	// ship with it.
	for !player2Base.IsDead() {
		engine.RunRound(ctx, func() { player1.Attack(player2Base) })
	}

	if victor := engine.Victor(); victor != nil {
		logging.Log.WithFields(logrus.Fields{
			"victor": victor.GetName(),
			"rounds": engine.Round(),
		}).Info("engagement decided")
	}
}
