package analytics

// Bucket is a named partition of a record sequence with aggregate
// statistics per stat category plus minutes played. Empty buckets keep
// a zero count and undefined summaries so callers can render "no data"
// states without special-casing.
type Bucket struct {
	GamesPlayed int                      `json:"games_played"`
	Stats       map[StatCategory]Summary `json:"stats"`
	Minutes     Summary                  `json:"minutes"`
}

func summarizeBucket(records []GameRecord) Bucket {
	stats := make(map[StatCategory]Summary, len(Categories()))
	for _, cat := range Categories() {
		stats[cat] = Summarize(Series(records, cat)).Rounded()
	}
	minutes := make([]float64, len(records))
	for i, r := range records {
		minutes[i] = r.Minutes
	}
	return Bucket{
		GamesPlayed: len(records),
		Stats:       stats,
		Minutes:     Summarize(minutes).Rounded(),
	}
}

// PartitionBy splits records into named groups using a key function and
// summarizes each group. A key function returning ok=false excludes the
// record from every bucket; the exclusion count is returned alongside.
func PartitionBy(records []GameRecord, key func(GameRecord) (string, bool)) (map[string][]GameRecord, int) {
	groups := make(map[string][]GameRecord)
	excluded := 0
	for _, r := range records {
		name, ok := key(r)
		if !ok {
			excluded++
			continue
		}
		groups[name] = append(groups[name], r)
	}
	return groups, excluded
}

// HomeAwaySplits holds per-venue aggregate statistics.
type HomeAwaySplits struct {
	Home Bucket `json:"home"`
	Away Bucket `json:"away"`
}

// ComputeHomeAwaySplits partitions the last N games (all games when
// lastN <= 0) by venue and summarizes each side.
func ComputeHomeAwaySplits(records []GameRecord, lastN int) HomeAwaySplits {
	window := TakeRecent(records, lastN)
	groups, _ := PartitionBy(window, func(r GameRecord) (string, bool) {
		if r.Home {
			return "home", true
		}
		return "away", true
	})
	return HomeAwaySplits{
		Home: summarizeBucket(groups["home"]),
		Away: summarizeBucket(groups["away"]),
	}
}

// RestImpact holds aggregate statistics per rest tier. Games whose rest
// days are unknown (the oldest known game) are excluded from every tier
// and counted in UnknownRestExcluded.
type RestImpact struct {
	ZeroDaysRest        Bucket `json:"zero_days_rest"`
	OneDayRest          Bucket `json:"one_day_rest"`
	TwoPlusDaysRest     Bucket `json:"two_plus_days_rest"`
	UnknownRestExcluded int    `json:"unknown_rest_excluded"`
}

// ComputeRestImpact partitions the last N games (all games when
// lastN <= 0) by days of rest before each game.
func ComputeRestImpact(records []GameRecord, lastN int) RestImpact {
	window := TakeRecent(records, lastN)
	groups, excluded := PartitionBy(window, func(r GameRecord) (string, bool) {
		if r.DaysRest == nil {
			return "", false
		}
		switch {
		case *r.DaysRest == 0:
			return "zero_days_rest", true
		case *r.DaysRest == 1:
			return "one_day_rest", true
		default:
			return "two_plus_days_rest", true
		}
	})
	return RestImpact{
		ZeroDaysRest:        summarizeBucket(groups["zero_days_rest"]),
		OneDayRest:          summarizeBucket(groups["one_day_rest"]),
		TwoPlusDaysRest:     summarizeBucket(groups["two_plus_days_rest"]),
		UnknownRestExcluded: excluded,
	}
}

// PaceBucket extends Bucket with the pace and efficiency context that
// motivates the partition.
type PaceBucket struct {
	Bucket
	AvgPossessions *float64 `json:"avg_possessions,omitempty"`
	AvgEfficiency  *float64 `json:"avg_efficiency,omitempty"`
}

// PaceImpact holds aggregate statistics per pace tier. OptimalPace
// names the non-empty tier with the highest mean efficiency; ties break
// toward the faster tier.
type PaceImpact struct {
	Slow        PaceBucket `json:"slow"`
	Medium      PaceBucket `json:"medium"`
	Fast        PaceBucket `json:"fast"`
	OptimalPace string     `json:"optimal_pace,omitempty"`
}

// ComputePaceImpact partitions the last N games (all games when
// lastN <= 0) into slow/medium/fast tiers. Tiers are percentile-based
// over the observed window (33rd and 67th percentiles of the
// possessions estimate) rather than fixed absolute cut points, so the
// partition adapts to the player's schedule.
func ComputePaceImpact(records []GameRecord, lastN int) PaceImpact {
	window := TakeRecent(records, lastN)
	if len(window) == 0 {
		return PaceImpact{
			Slow:   paceBucket(nil),
			Medium: paceBucket(nil),
			Fast:   paceBucket(nil),
		}
	}

	poss := make([]float64, len(window))
	for i, r := range window {
		poss[i] = float64(r.Possessions())
	}
	low := quantile(poss, 0.33)
	high := quantile(poss, 0.67)

	groups, _ := PartitionBy(window, func(r GameRecord) (string, bool) {
		p := float64(r.Possessions())
		switch {
		case p >= high:
			return "fast", true
		case p <= low:
			return "slow", true
		default:
			return "medium", true
		}
	})

	impact := PaceImpact{
		Slow:   paceBucket(groups["slow"]),
		Medium: paceBucket(groups["medium"]),
		Fast:   paceBucket(groups["fast"]),
	}

	best := ""
	var bestEff float64
	for _, tier := range []struct {
		name   string
		bucket PaceBucket
	}{
		{"fast", impact.Fast},
		{"medium", impact.Medium},
		{"slow", impact.Slow},
	} {
		if tier.bucket.AvgEfficiency == nil {
			continue
		}
		if best == "" || *tier.bucket.AvgEfficiency > bestEff {
			best = tier.name
			bestEff = *tier.bucket.AvgEfficiency
		}
	}
	impact.OptimalPace = best

	return impact
}

func paceBucket(records []GameRecord) PaceBucket {
	pb := PaceBucket{Bucket: summarizeBucket(records)}
	if len(records) == 0 {
		return pb
	}
	var possSum, effSum float64
	for _, r := range records {
		possSum += float64(r.Possessions())
		effSum += float64(r.Efficiency())
	}
	avgPoss := round1(possSum / float64(len(records)))
	avgEff := round1(effSum / float64(len(records)))
	pb.AvgPossessions = &avgPoss
	pb.AvgEfficiency = &avgEff
	return pb
}
