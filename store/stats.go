package store

import (
	"database/sql"
	"strings"

	"playhub/models"
)

func (s *mysqlStore) Stats(userID int64) (*models.UserStats, error) {
	var st models.UserStats
	err := s.db.QueryRow(`
		SELECT id, user_id, wins, losses, tournaments_played, tournaments_won
		FROM user_stats WHERE user_id = ?
	`, userID).Scan(&st.ID, &st.UserID, &st.Wins, &st.Losses, &st.TournamentsPlayed, &st.TournamentsWon)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func statsUpdateClauses(upd models.StatsUpdate) ([]string, []any) {
	var fields []string
	var args []any
	if upd.Wins != nil {
		fields = append(fields, "wins = ?")
		args = append(args, *upd.Wins)
	}
	if upd.Losses != nil {
		fields = append(fields, "losses = ?")
		args = append(args, *upd.Losses)
	}
	if upd.TournamentsPlayed != nil {
		fields = append(fields, "tournaments_played = ?")
		args = append(args, *upd.TournamentsPlayed)
	}
	if upd.TournamentsWon != nil {
		fields = append(fields, "tournaments_won = ?")
		args = append(args, *upd.TournamentsWon)
	}
	return fields, args
}

func (s *mysqlStore) UpdateStats(userID int64, upd models.StatsUpdate) (*models.UserStats, error) {
	fields, args := statsUpdateClauses(upd)
	if len(fields) == 0 {
		return s.Stats(userID)
	}

	args = append(args, userID)
	_, err := s.db.Exec("UPDATE user_stats SET "+strings.Join(fields, ", ")+" WHERE user_id = ?", args...)
	if err != nil {
		return nil, err
	}

	return s.Stats(userID)
}
