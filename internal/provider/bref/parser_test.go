package bref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleGameLogPage = `<html><body>
<table id="pgl_basic"><tbody>
<tr>
	<td data-stat="date_game">2024-04-14</td>
	<td data-stat="team_id">OKC</td>
	<td data-stat="game_location"></td>
	<td data-stat="opp_id">DAL</td>
	<td data-stat="mp">36:30</td>
	<td data-stat="fg">12</td>
	<td data-stat="fga">22</td>
	<td data-stat="fg3">3</td>
	<td data-stat="ft">8</td>
	<td data-stat="fta">9</td>
	<td data-stat="orb">1</td>
	<td data-stat="trb">6</td>
	<td data-stat="ast">7</td>
	<td data-stat="stl">2</td>
	<td data-stat="blk">1</td>
	<td data-stat="tov">3</td>
	<td data-stat="pts">35</td>
</tr>
<tr class="thead"><td data-stat="date_game">Date</td></tr>
<tr>
	<td data-stat="date_game">2024-04-12</td>
	<td data-stat="team_id">OKC</td>
	<td data-stat="game_location">@</td>
	<td data-stat="opp_id">MIL</td>
	<td data-stat="mp">34:00</td>
	<td data-stat="pts">28</td>
</tr>
</tbody></table>
</body></html>`

func TestParseGameLogTable(t *testing.T) {
	rows, err := parseGameLogTable(sampleGameLogPage)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "2024-04-14", rows[0].GameDate)
	require.Equal(t, "OKC vs. DAL", rows[0].Matchup)
	require.Equal(t, 35, rows[0].Points)
	require.Equal(t, 7, rows[0].Assists)
	require.InDelta(t, 36.5, rows[0].Minutes, 1e-9)

	require.Equal(t, "OKC @ MIL", rows[1].Matchup)
	require.Equal(t, 28, rows[1].Points)
}

func TestParseGameLogTableNoTable(t *testing.T) {
	rows, err := parseGameLogTable("<html><body><p>no stats here</p></body></html>")
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestParseMinutes(t *testing.T) {
	require.Equal(t, 0.0, parseMinutes(""))
	require.Equal(t, 36.0, parseMinutes("36"))
	require.InDelta(t, 33.75, parseMinutes("33:45"), 1e-9)
}

func TestSeasonPageYear(t *testing.T) {
	year, err := seasonPageYear("2023-24")
	require.NoError(t, err)
	require.Equal(t, 2024, year)

	_, err = seasonPageYear("garbage")
	require.Error(t, err)
}
