// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"math"

	"github.com/danielhkuo/pollroster/models"
)

// Results computes chart data for a poll: total votes and each option's
// share rounded half up to a whole percent.
func Results(poll models.Poll) models.PollResults {
	total := poll.TotalVotes()
	options := make([]models.OptionResult, 0, len(poll.Options))
	for _, o := range poll.Options {
		percent := 0
		if total > 0 {
			percent = int(math.Floor(float64(o.Votes)/float64(total)*100 + 0.5))
		}
		options = append(options, models.OptionResult{
			OptionID: o.ID,
			Label:    o.Label,
			Votes:    o.Votes,
			Percent:  percent,
		})
	}
	return models.PollResults{Total: total, Options: options}
}
