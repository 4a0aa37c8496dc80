package models_test

import (
	"errors"
	"testing"

	"coinflip-casino-backend/internal/models"
)

func TestComputePayout(t *testing.T) {
	// 2 chips at a 1% edge pay 3.96 chips
	payout, err := models.ComputePayout(2*models.ChipUnit, models.DefaultHouseEdgeBP)
	if err != nil {
		t.Fatalf("ComputePayout failed: %v", err)
	}
	if payout != 396*models.ChipUnit/100 {
		t.Errorf("Expected payout %d, got %d", 396*models.ChipUnit/100, payout)
	}

	// The minimum bet still pays exactly 1.98x
	payout, err = models.ComputePayout(models.DefaultMinBet, models.DefaultHouseEdgeBP)
	if err != nil {
		t.Fatalf("ComputePayout failed for minimum bet: %v", err)
	}
	if payout != models.DefaultMinBet*198/100 {
		t.Errorf("Expected payout %d, got %d", models.DefaultMinBet*198/100, payout)
	}

	if _, err := models.ComputePayout(0, models.DefaultHouseEdgeBP); !errors.Is(err, models.ErrInvalidWager) {
		t.Errorf("Zero wager should fail with ErrInvalidWager, got %v", err)
	}

	// 49 base units: the 1% edge on the doubled stake truncates to zero
	if _, err := models.ComputePayout(49, models.DefaultHouseEdgeBP); !errors.Is(err, models.ErrInvalidWager) {
		t.Errorf("Wager below edge resolution should fail with ErrInvalidWager, got %v", err)
	}

	// 50 base units is the smallest representable wager: edge 1, payout 99
	payout, err = models.ComputePayout(50, models.DefaultHouseEdgeBP)
	if err != nil {
		t.Fatalf("ComputePayout failed at edge resolution boundary: %v", err)
	}
	if payout != 99 {
		t.Errorf("Expected payout 99, got %d", payout)
	}
}

func TestOutcomeForRandom(t *testing.T) {
	if outcome := models.OutcomeForRandom(777); outcome != models.SideTails {
		t.Errorf("777 should land tails, got %v", outcome)
	}
	if outcome := models.OutcomeForRandom(776); outcome != models.SideHeads {
		t.Errorf("776 should land heads, got %v", outcome)
	}
}

func TestBetStateHelpers(t *testing.T) {
	var empty *models.Bet
	if !empty.Settled() {
		t.Error("Empty slot should be settled")
	}
	if empty.Won() {
		t.Error("Empty slot should not report won")
	}

	awaiting := &models.Bet{State: models.BetStateAwaitingRandomness, OutcomeMatched: false}
	if awaiting.Settled() {
		t.Error("Awaiting bet should not be settled")
	}
	if awaiting.Won() {
		t.Error("Awaiting bet should not report won")
	}

	resolved := &models.Bet{State: models.BetStateResolved, OutcomeMatched: true}
	if resolved.Settled() {
		t.Error("Resolved unclaimed bet should not be settled")
	}
	if !resolved.Won() {
		t.Error("Resolved matching bet should report won")
	}

	claimed := &models.Bet{State: models.BetStateClaimed, OutcomeMatched: true}
	if !claimed.Settled() {
		t.Error("Claimed bet should be settled")
	}
	if claimed.Won() {
		t.Error("Claimed bet should not report won again")
	}
}

func TestFlipRequestValidate(t *testing.T) {
	valid := &models.FlipRequest{Amount: models.ChipUnit, Side: 1}
	if err := valid.Validate(); err != nil {
		t.Errorf("Valid flip request failed validation: %v", err)
	}

	badSide := &models.FlipRequest{Amount: models.ChipUnit, Side: 3}
	if err := badSide.Validate(); err == nil {
		t.Error("Side outside {1,2} should fail validation")
	}

	badAmount := &models.FlipRequest{Amount: 0, Side: 2}
	if err := badAmount.Validate(); err == nil {
		t.Error("Zero amount should fail validation")
	}
}
