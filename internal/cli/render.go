package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"porra/internal/domain"
	"porra/internal/repository"
	"porra/internal/service"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tiedStyle   = cellStyle.Foreground(lipgloss.Color("214"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderTable(w io.Writer, t *table.Table) {
	fmt.Fprintln(w, t.Render())
}

func renderTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func renderStandings(w io.Writer, gt *service.GroupTable) {
	renderTitle(w, "Grupo "+gt.GroupID)

	t := newTable("#", "Selección", "PJ", "G", "E", "P", "GF", "GC", "DG", "Pts")
	tied := make(map[int]bool)
	for i, s := range gt.Standings {
		if s.IsTied {
			tied[i] = true
		}
		t.Row(
			strconv.Itoa(s.Position),
			s.Team.Name,
			strconv.Itoa(s.Played),
			strconv.Itoa(s.Won),
			strconv.Itoa(s.Drawn),
			strconv.Itoa(s.Lost),
			strconv.Itoa(s.GoalsFor),
			strconv.Itoa(s.GoalsAgainst),
			fmt.Sprintf("%+d", s.GoalDifference),
			strconv.Itoa(s.Points),
		)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case tied[row]:
			return tiedStyle
		}
		return cellStyle
	})
	renderTable(w, t)

	if len(gt.Ties) == 0 {
		return
	}
	names := make(map[string]string, len(gt.Standings))
	for _, s := range gt.Standings {
		names[s.Team.ID] = s.Team.Name
	}
	for _, group := range gt.Ties {
		labels := make([]string, len(group))
		for i, id := range group {
			labels[i] = fmt.Sprintf("%s (%s)", names[id], id)
		}
		fmt.Fprintln(w, mutedStyle.Render("Empate sin resolver: "+strings.Join(labels, ", ")+". Usa --tiebreak equipo=posición."))
	}
}

func teamName(t *domain.Team) string {
	if t == nil {
		return "Por definir"
	}
	return t.Name
}

func scoreText(m domain.Match) string {
	if m.Result == nil {
		return "-"
	}
	return fmt.Sprintf("%d-%d", m.Result.Home, m.Result.Away)
}

func renderMatches(w io.Writer, matches []domain.Match) {
	t := newTable("ID", "Nº", "Fecha", "Fase", "Grupo", "Local", "Visitante", "Resultado")
	for _, m := range matches {
		t.Row(
			m.ID,
			strconv.Itoa(m.Number),
			m.KickoffAt.Local().Format("02/01 15:04"),
			string(m.Phase),
			m.GroupID,
			teamName(m.HomeTeam),
			teamName(m.AwayTeam),
			scoreText(m),
		)
	}
	renderTable(w, t)
}

func renderCalendar(w io.Writer, days []repository.CalendarDay) {
	for _, d := range days {
		renderTitle(w, d.Date.Format("Monday 02/01/2006"))
		renderMatches(w, d.Matches)
	}
}

func renderLeagues(w io.Writer, leagues []domain.League) {
	t := newTable("ID", "Nombre", "Código", "Miembros", "Privada")
	for _, l := range leagues {
		t.Row(l.ID, l.Name, l.Code, strconv.Itoa(l.MemberCount), yesNo(l.IsPrivate))
	}
	renderTable(w, t)
}

func renderLeague(w io.Writer, l *domain.League) {
	renderTitle(w, l.Name)
	if l.Description != "" {
		fmt.Fprintln(w, l.Description)
	}
	fmt.Fprintf(w, "ID: %s\nCódigo de invitación: %s\nMiembros: %d\nPrivada: %s\n", l.ID, l.Code, l.MemberCount, yesNo(l.IsPrivate))
}

func renderMembers(w io.Writer, members []domain.LeagueMember) {
	t := newTable("Usuario", "Nombre", "Rol", "Desde")
	for _, m := range members {
		t.Row(m.UserID, m.Name, m.Role, m.JoinedAt.Local().Format(time.DateOnly))
	}
	renderTable(w, t)
}

func renderRanking(w io.Writer, page *repository.RankingPage) {
	t := newTable("#", "Usuario", "Puntos", "Exactos", "Aciertos")
	for _, e := range page.Entries {
		t.Row(strconv.Itoa(e.Position), e.UserName, strconv.Itoa(e.Points), strconv.Itoa(e.ExactScores), strconv.Itoa(e.Outcomes))
	}
	renderTable(w, t)
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Página %d, %d participantes", page.Page, page.Total)))
}

func predictionText(p domain.MatchPrediction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d-%d", p.HomeScore, p.AwayScore)
	if p.HasExtraTime() {
		fmt.Fprintf(&b, " (prórroga %d-%d)", *p.ExtraTimeHome, *p.ExtraTimeAway)
	}
	if p.PenaltiesWinner != nil {
		fmt.Fprintf(&b, " (penaltis: %s)", *p.PenaltiesWinner)
	}
	return b.String()
}

func renderPrediction(w io.Writer, p *domain.Prediction) {
	renderTitle(w, "Predicción "+p.ID)
	t := newTable("Partido", "Local", "Visitante", "Pronóstico")
	for _, m := range p.Matches {
		t.Row(m.MatchID, m.HomeTeamID, m.AwayTeamID, predictionText(m))
	}
	renderTable(w, t)

	fmt.Fprintf(w, "Campeón: %s\n", orDash(p.ChampionID))
	fmt.Fprintf(w, "Balón de Oro: %s\nBota de Oro: %s\nGuante de Oro: %s\nMejor jugador joven: %s\n",
		orDash(p.Awards.GoldenBall), orDash(p.Awards.GoldenBoot), orDash(p.Awards.GoldenGlove), orDash(p.Awards.BestYoungPlayer))
}

func renderStats(w io.Writer, s *domain.PredictionStats) {
	t := newTable("Apartado", "Completado")
	t.Row("Fase de grupos", fmt.Sprintf("%d/%d", s.GroupMatchesPredicted, s.GroupMatchesTotal))
	t.Row("Eliminatorias", fmt.Sprintf("%d/%d", s.KnockoutMatchesPredicted, s.KnockoutMatchesTotal))
	t.Row("Premios", yesNo(s.AwardsCompleted))
	t.Row("Campeón", yesNo(s.ChampionSelected))
	renderTable(w, t)
	fmt.Fprintf(w, "Progreso: %d%%  Puntos: %d\n", s.CompletionPercent(), s.Points)
}

func renderDrafts(w io.Writer, drafts []domain.Draft) {
	if len(drafts) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No hay borradores."))
		return
	}
	t := newTable("Partido", "Fase", "Grupo", "Pronóstico", "Actualizado")
	for _, d := range drafts {
		t.Row(d.Prediction.MatchID, string(d.Phase), d.GroupID, predictionText(d.Prediction), d.UpdatedAt.Local().Format("02/01 15:04"))
	}
	renderTable(w, t)
}

func renderTeams(w io.Writer, teams []domain.Team) {
	t := newTable("ID", "Selección", "Código", "Confederación", "Grupo")
	for _, team := range teams {
		t.Row(team.ID, team.Name, team.Code, team.Confederation, team.GroupID)
	}
	renderTable(w, t)
}

func renderPlayers(w io.Writer, players []domain.Player) {
	t := newTable("ID", "Nº", "Jugador", "Posición", "Club")
	for _, p := range players {
		t.Row(p.ID, strconv.Itoa(p.Number), p.Name, p.Position, p.Club)
	}
	renderTable(w, t)
}

func renderStadiums(w io.Writer, stadiums []domain.Stadium) {
	t := newTable("ID", "Estadio", "Ciudad", "País", "Aforo")
	for _, s := range stadiums {
		t.Row(s.ID, s.Name, s.City, s.Country, strconv.Itoa(s.Capacity))
	}
	renderTable(w, t)
}

func renderDashboard(w io.Writer, d *service.Dashboard) {
	renderTitle(w, "Hola, "+d.User.Name)

	t := newTable("Liga", "Progreso", "Puntos")
	for _, l := range d.Leagues {
		progress, points := "-", "-"
		if l.Stats != nil {
			progress = fmt.Sprintf("%d%%", l.Stats.CompletionPercent())
			points = strconv.Itoa(l.Stats.Points)
		}
		t.Row(l.League.Name, progress, points)
	}
	renderTable(w, t)

	renderTitle(w, "Próximos partidos")
	renderMatches(w, d.Upcoming)
}

func yesNo(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
