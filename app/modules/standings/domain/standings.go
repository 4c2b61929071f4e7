// Package standingsdomain aggregates completed match results into a season
// standings table. Pure projection: rebuilding from the same matches always
// produces the same rows, so event redelivery is harmless.
package standingsdomain

import (
	"sort"
	"time"

	"github.com/google/uuid"

	matchdomain "github.com/fairway-collective/league-engine/app/modules/match/domain"
)

// Row is one player's accumulated season standing.
type Row struct {
	SeasonID      uuid.UUID `json:"season_id"`
	PlayerID      uuid.UUID `json:"player_id"`
	MatchesPlayed int       `json:"matches_played"`
	Points        int       `json:"points"`
	Absences      int       `json:"absences"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BuildRows projects completed matches into standings rows, ordered by points
// descending with player ID as the deterministic tiebreaker.
func BuildRows(seasonID uuid.UUID, matches []matchdomain.Match, now time.Time) []Row {
	byPlayer := make(map[uuid.UUID]*Row)
	row := func(playerID uuid.UUID) *Row {
		r, ok := byPlayer[playerID]
		if !ok {
			r = &Row{SeasonID: seasonID, PlayerID: playerID, UpdatedAt: now}
			byPlayer[playerID] = r
		}
		return r
	}

	for _, m := range matches {
		if m.Status != matchdomain.MatchStatusCompleted {
			continue
		}

		a := row(m.PlayerAID)
		a.MatchesPlayed++
		a.Points += m.PointsA
		if m.AbsentA {
			a.Absences++
		}

		b := row(m.PlayerBID)
		b.MatchesPlayed++
		b.Points += m.PointsB
		if m.AbsentB {
			b.Absences++
		}
	}

	rows := make([]Row, 0, len(byPlayer))
	for _, r := range byPlayer {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].PlayerID.String() < rows[j].PlayerID.String()
	})
	return rows
}
