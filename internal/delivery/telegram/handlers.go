package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"futbolamigos/internal/application"
	"futbolamigos/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleMessage(chatID int64, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	if text == "/cancel" || text == labelCancel {
		b.sessions.reset(chatID)
		b.sendMessage(chatID, "Cancelled.", KbNone)
		return
	}

	switch {
	case text == "/start":
		b.sendMessage(chatID, "Fútbol Amigos\n\n"+
			"/players - Roster\n"+
			"/addplayer [name] - Add a player\n"+
			"/newmatch - Record a match\n"+
			"/vote - Rate your teammates\n"+
			"/match [id] - Match ratings\n"+
			"/table - Season table\n"+
			"/export - Season table as Excel\n"+
			"/sheet - Sync season table to Google Sheets", KbNone)

	case text == "/players":
		b.handlePlayers(chatID)

	case strings.HasPrefix(text, "/addplayer"):
		b.handleAddPlayer(chatID, strings.TrimSpace(strings.TrimPrefix(text, "/addplayer")))

	case text == "/newmatch":
		sess := b.sessions.get(chatID)
		sess.State = StateMatchDate
		sess.Draft = &matchDraft{}
		b.sendMessage(chatID, "Match date? (YYYY-MM-DD or 'today')", KbCancel)

	case text == "/vote":
		b.handleVoteStart(chatID)

	case strings.HasPrefix(text, "/match"):
		b.handleMatchStandings(chatID, strings.TrimSpace(strings.TrimPrefix(text, "/match")))

	case text == "/table":
		b.handleSeasonStandings(chatID)

	case text == "/export":
		b.handleExport(chatID)

	case text == "/sheet":
		b.handleSheet(chatID)

	default:
		b.handleSessionInput(chatID, text)
	}
}

func (b *Bot) handlePlayers(chatID int64) {
	players, err := b.services.Roster.ListPlayers()
	if err != nil {
		b.logger.Error("failed to list players: %v", err)
		b.sendMessage(chatID, "Something went wrong, try again later.", KbNone)
		return
	}
	if len(players) == 0 {
		b.sendMessage(chatID, "No players yet. Add one with /addplayer [name].", KbNone)
		return
	}

	var sb strings.Builder
	sb.WriteString("Roster:\n")
	for _, p := range players {
		sb.WriteString(fmt.Sprintf("%d. %s\n", p.ID, p.Name))
	}
	b.sendMessage(chatID, sb.String(), KbNone)
}

func (b *Bot) handleAddPlayer(chatID int64, name string) {
	if name == "" {
		b.sendMessage(chatID, "Use: /addplayer [name]", KbNone)
		return
	}
	id, err := b.services.Roster.AddPlayer(name)
	if err != nil {
		b.sendMessage(chatID, errorMessage(err), KbNone)
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("Added %s (#%d).", name, id), KbNone)
}

func (b *Bot) handleVoteStart(chatID int64) {
	matches, err := b.services.Match.ListMatches()
	if err != nil {
		b.logger.Error("failed to list matches: %v", err)
		b.sendMessage(chatID, "Something went wrong, try again later.", KbNone)
		return
	}
	if len(matches) == 0 {
		b.sendMessage(chatID, "No matches recorded yet.", KbNone)
		return
	}

	var sb strings.Builder
	sb.WriteString("Which match? Send the number.\n")
	for _, m := range matches {
		line := fmt.Sprintf("%d. %s - %s", m.ID, m.Date.Format(dateLayout), outcomeLabel(m.Outcome))
		if voted, err := b.services.Voting.VotersCount(m.ID); err == nil {
			if participants, err := b.services.Match.ParticipantsOf(m.ID); err == nil {
				line += fmt.Sprintf(" (%d/%d voted)", voted, len(participants))
			}
		}
		sb.WriteString(line + "\n")
	}

	sess := b.sessions.get(chatID)
	sess.State = StateVoteMatch
	sess.Ballot = &ballot{Scores: make(map[int]int)}
	b.sendMessage(chatID, sb.String(), KbCancel)
}

func (b *Bot) handleMatchStandings(chatID int64, arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		b.sendMessage(chatID, "Use: /match [id]", KbNone)
		return
	}

	rows, err := b.services.Standings.MatchStandings(id)
	if err != nil {
		b.sendMessage(chatID, errorMessage(err), KbNone)
		return
	}
	if len(rows) == 0 {
		b.sendMessage(chatID, "No votes for this match yet.", KbNone)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match %d ratings:\n", id))
	for i, r := range rows {
		sb.WriteString(fmt.Sprintf("%d. %s - %.1f\n", i+1, r.Player.Name, r.MeanScore))
	}
	b.sendMessage(chatID, sb.String(), KbNone)
}

func (b *Bot) handleSeasonStandings(chatID int64) {
	rows, err := b.services.Standings.SeasonStandings()
	if err != nil {
		b.logger.Error("failed to build season standings: %v", err)
		b.sendMessage(chatID, "Something went wrong, try again later.", KbNone)
		return
	}
	if len(rows) == 0 {
		b.sendMessage(chatID, "No votes yet, the table is empty.", KbNone)
		return
	}

	var sb strings.Builder
	sb.WriteString("Season table:\n")
	for i, r := range rows {
		sb.WriteString(fmt.Sprintf("%d. %s - %.1f | %dW %dD %dL | %.0f%%\n",
			i+1, r.Player.Name, r.AvgScore, r.Wins, r.Draws, r.Losses, r.WinRate*100))
	}
	b.sendMessage(chatID, sb.String(), KbNone)
}

func (b *Bot) handleExport(chatID int64) {
	data, err := b.services.Export.ExcelReport()
	if err != nil {
		b.logger.Error("failed to build excel report: %v", err)
		b.sendMessage(chatID, "Something went wrong, try again later.", KbNone)
		return
	}
	file := tgbotapi.FileBytes{Name: "season.xlsx", Bytes: data}
	if _, err := b.bot.Send(tgbotapi.NewDocument(chatID, file)); err != nil {
		b.logger.Error("failed to send excel report: %v", err)
	}
}

func (b *Bot) handleSheet(chatID int64) {
	url, err := b.services.Export.SyncToGoogleSheet()
	if err != nil {
		b.logger.Error("failed to sync google sheet: %v", err)
		b.sendMessage(chatID, "Could not sync the sheet: "+err.Error(), KbNone)
		return
	}
	b.sendMessage(chatID, "Season table synced: "+url, KbNone)
}

func (b *Bot) handleSessionInput(chatID int64, text string) {
	sess := b.sessions.get(chatID)

	switch sess.State {
	case StateMatchDate:
		b.handleDraftDate(chatID, sess, text)
	case StateMatchOutcome:
		b.handleDraftOutcome(chatID, sess, text)
	case StateMatchTeamA:
		b.handleDraftTeamA(chatID, sess, text)
	case StateMatchTeamB:
		b.handleDraftTeamB(chatID, sess, text)
	case StateVoteMatch:
		b.handleBallotMatch(chatID, sess, text)
	case StateVoteSelf:
		b.handleBallotSelf(chatID, sess, text)
	case StateVoteScore:
		b.handleBallotScore(chatID, sess, text)
	default:
		b.sendMessage(chatID, "Use /start to see the commands.", KbNone)
	}
}

func (b *Bot) handleDraftDate(chatID int64, sess *session, text string) {
	var date time.Time
	if strings.EqualFold(text, "today") {
		date = time.Now()
	} else {
		var err error
		date, err = time.Parse(dateLayout, text)
		if err != nil {
			b.sendMessage(chatID, "Invalid date, use YYYY-MM-DD or 'today'.", KbCancel)
			return
		}
	}
	sess.Draft.Date = date
	sess.State = StateMatchOutcome
	b.sendMessage(chatID, "What was the result?", KbOutcome)
}

func (b *Bot) handleDraftOutcome(chatID int64, sess *session, text string) {
	outcome, ok := outcomeFromLabel(text)
	if !ok {
		b.sendMessage(chatID, "Pick one of the result buttons.", KbOutcome)
		return
	}
	sess.Draft.Outcome = outcome
	sess.State = StateMatchTeamA
	b.sendMessage(chatID, "Team A players? (comma-separated names)", KbCancel)
}

func (b *Bot) handleDraftTeamA(chatID int64, sess *session, text string) {
	ids, err := b.resolveNames(text)
	if err != nil {
		b.sendMessage(chatID, err.Error()+". Try again.", KbCancel)
		return
	}
	sess.Draft.TeamA = ids
	sess.State = StateMatchTeamB
	b.sendMessage(chatID, "Team B players? (comma-separated names)", KbCancel)
}

func (b *Bot) handleDraftTeamB(chatID int64, sess *session, text string) {
	teamB, err := b.resolveNames(text)
	if err != nil {
		b.sendMessage(chatID, err.Error()+". Try again.", KbCancel)
		return
	}

	draft := sess.Draft
	b.sessions.reset(chatID)

	id, err := b.services.Match.ComposeMatch(draft.Date, draft.Outcome, draft.TeamA, teamB)
	if err != nil {
		b.sendMessage(chatID, errorMessage(err), KbNone)
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("Match #%d saved. Players can now /vote.", id), KbNone)
}

func (b *Bot) handleBallotMatch(chatID int64, sess *session, text string) {
	matchID, err := strconv.Atoi(text)
	if err != nil {
		b.sendMessage(chatID, "Send the match number.", KbCancel)
		return
	}

	participants, err := b.services.Match.ParticipantsOf(matchID)
	if err != nil {
		b.sendMessage(chatID, errorMessage(err), KbCancel)
		return
	}

	sess.Ballot.MatchID = matchID

	var names []string
	for _, p := range participants {
		player, err := b.services.Roster.PlayerByID(p.PlayerID)
		if err != nil {
			continue
		}
		names = append(names, player.Name)
	}
	sess.State = StateVoteSelf
	b.sendMessage(chatID, "Who are you?\n"+strings.Join(names, ", "), KbCancel)
}

func (b *Bot) handleBallotSelf(chatID int64, sess *session, text string) {
	voterID, err := b.services.Roster.PlayerIDByName(text)
	if err != nil {
		b.sendMessage(chatID, "Don't know that name, try again.", KbCancel)
		return
	}

	participants, err := b.services.Match.ParticipantsOf(sess.Ballot.MatchID)
	if err != nil {
		b.sendMessage(chatID, errorMessage(err), KbNone)
		b.sessions.reset(chatID)
		return
	}

	isParticipant := false
	for _, p := range participants {
		if p.PlayerID == voterID {
			isParticipant = true
			break
		}
	}
	if !isParticipant {
		b.sendMessage(chatID, "You did not play in this match.", KbCancel)
		return
	}

	voted, err := b.services.Voting.HasVoted(sess.Ballot.MatchID, voterID)
	if err != nil {
		b.logger.Error("failed to check vote ledger: %v", err)
		b.sendMessage(chatID, "Something went wrong, try again later.", KbNone)
		b.sessions.reset(chatID)
		return
	}
	if voted {
		b.sendMessage(chatID, "You already voted for this match.", KbNone)
		b.sessions.reset(chatID)
		return
	}

	sess.Ballot.VoterID = voterID
	for _, p := range participants {
		if p.PlayerID == voterID {
			continue
		}
		player, err := b.services.Roster.PlayerByID(p.PlayerID)
		if err != nil {
			continue
		}
		sess.Ballot.Queue = append(sess.Ballot.Queue, player)
	}

	if len(sess.Ballot.Queue) == 0 {
		b.sendMessage(chatID, "Nobody to rate in this match.", KbNone)
		b.sessions.reset(chatID)
		return
	}

	sess.State = StateVoteScore
	b.promptNextScore(chatID, sess)
}

func (b *Bot) handleBallotScore(chatID int64, sess *session, text string) {
	current := sess.Ballot.Queue[0]

	if !strings.EqualFold(text, labelSkip) {
		score, err := strconv.Atoi(text)
		if err != nil || score < application.ScoreMin || score > application.ScoreMax {
			b.sendMessage(chatID, fmt.Sprintf("Send a number between %d and %d, or Skip.",
				application.ScoreMin, application.ScoreMax), KbScore)
			return
		}
		sess.Ballot.Scores[current.ID] = score
	}

	sess.Ballot.Queue = sess.Ballot.Queue[1:]
	if len(sess.Ballot.Queue) > 0 {
		b.promptNextScore(chatID, sess)
		return
	}

	bl := sess.Ballot
	b.sessions.reset(chatID)

	if err := b.services.Voting.RecordVote(bl.MatchID, bl.VoterID, bl.Scores); err != nil {
		b.sendMessage(chatID, errorMessage(err), KbNone)
		return
	}
	b.sendMessage(chatID, "Vote recorded, thanks!", KbNone)
}

func (b *Bot) promptNextScore(chatID int64, sess *session) {
	next := sess.Ballot.Queue[0]
	b.sendMessage(chatID, fmt.Sprintf("Rate %s (%d-%d, most people give %d):",
		next.Name, application.ScoreMin, application.ScoreMax, application.ScoreDefault), KbScore)
}

func (b *Bot) resolveNames(text string) ([]int, error) {
	parts := strings.Split(text, ",")
	var ids []int
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		id, err := b.services.Roster.PlayerIDByName(name)
		if err != nil {
			return nil, fmt.Errorf("unknown player %q", name)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no players given")
	}
	return ids, nil
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrDuplicateName):
		return "A player with that name already exists."
	case errors.Is(err, models.ErrEmptyName):
		return "The name cannot be empty."
	case errors.Is(err, models.ErrEmptyTeam):
		return "Both teams need at least one player."
	case errors.Is(err, models.ErrOverlappingTeams):
		return "A player cannot be on both teams."
	case errors.Is(err, models.ErrInvalidOutcome):
		return "The result must be a team A win, a team B win or a draw."
	case errors.Is(err, models.ErrAlreadyVoted):
		return "You already voted for this match."
	case errors.Is(err, models.ErrSelfRating):
		return "You cannot rate yourself."
	case errors.Is(err, models.ErrVoterNotInMatch):
		return "You did not play in this match."
	case errors.Is(err, models.ErrScoreOutOfRange):
		return fmt.Sprintf("Scores must be between %d and %d.", application.ScoreMin, application.ScoreMax)
	case errors.Is(err, models.ErrMatchNotFound):
		return "That match does not exist."
	case errors.Is(err, models.ErrPlayerNotFound):
		return "That player is not on the roster."
	default:
		return "Something went wrong, try again later."
	}
}
