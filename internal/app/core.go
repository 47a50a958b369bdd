// Package app assembles the core services and the dispatcher over a store.
package app

import (
	"github.com/rs/zerolog"

	"github.com/Porismic/JupiterBot/internal/common/clock"
	"github.com/Porismic/JupiterBot/internal/common/logger"
	"github.com/Porismic/JupiterBot/internal/dispatch"
	"github.com/Porismic/JupiterBot/internal/domain/member"
	"github.com/Porismic/JupiterBot/internal/domain/slots"
	auctionrepo "github.com/Porismic/JupiterBot/internal/features/auction/repository"
	auctionsvc "github.com/Porismic/JupiterBot/internal/features/auction/service"
	giveawayrepo "github.com/Porismic/JupiterBot/internal/features/giveaway/repository"
	giveawaysvc "github.com/Porismic/JupiterBot/internal/features/giveaway/service"
	slotsrepo "github.com/Porismic/JupiterBot/internal/features/slots/repository"
	slotssvc "github.com/Porismic/JupiterBot/internal/features/slots/service"
	statsrepo "github.com/Porismic/JupiterBot/internal/features/stats/repository"
	statssvc "github.com/Porismic/JupiterBot/internal/features/stats/service"
	"github.com/Porismic/JupiterBot/internal/platform/metrics"
	"github.com/Porismic/JupiterBot/internal/platform/store"
	"github.com/Porismic/JupiterBot/internal/utils/random"
)

// Options are the collaborators of the core. Store is required; nil
// Directory, Announcer, Clock and Random fall back to none, no-op, the system
// clock and crypto/rand.
type Options struct {
	Store         store.Store
	Directory     member.Directory
	Announcer     giveawaysvc.Announcer
	Clock         clock.Clock
	Random        random.Source
	SelectionMode giveawaysvc.SelectionMode
	BoosterTiers  map[string]int
	LevelTiers    map[string]int
	Metrics       *metrics.Metrics
	Logger        zerolog.Logger
}

type Core struct {
	Services   dispatch.Services
	Dispatcher *dispatch.Dispatcher
}

func NewCore(o Options) *Core {
	clk := o.Clock
	if clk == nil {
		clk = clock.System{}
	}
	src := o.Random
	if src == nil {
		src = random.CryptoSource{}
	}

	stats := statssvc.NewService(statsrepo.New(o.Store), o.Metrics, logger.Component(o.Logger, "stats"))
	slotLedger := slotssvc.NewService(
		slotsrepo.New(o.Store),
		slots.NewAllotment(o.BoosterTiers, o.LevelTiers),
		o.Directory,
		o.Metrics,
		logger.Component(o.Logger, "slots"),
	)
	giveaways := giveawaysvc.NewService(
		giveawayrepo.New(o.Store),
		stats,
		giveawaysvc.NewSelector(src, o.SelectionMode),
		o.Announcer,
		clk,
		o.Metrics,
		logger.Component(o.Logger, "giveaways"),
	)
	auctions := auctionsvc.NewService(auctionrepo.New(o.Store), slotLedger, clk, o.Metrics, logger.Component(o.Logger, "auctions"))

	services := dispatch.Services{
		Giveaways: giveaways,
		Slots:     slotLedger,
		Auctions:  auctions,
		Stats:     stats,
	}
	return &Core{
		Services:   services,
		Dispatcher: dispatch.New(services, o.Directory, clk, o.Metrics, logger.Component(o.Logger, "dispatch")),
	}
}
