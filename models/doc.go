// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreatePollRequest: title, options
  - VoteRequest: option_id
  - SetVotesRequest: votes
  - ExportRequest: voter_ids

# Response Types

  - PollSummary: list entry with total votes and created_ago
  - PollDetailResponse: poll, results, device_choice
  - VoteResponse: poll, results, option_id
  - ShareResponse: share_url
  - SurnamesResponse, MembersResponse: roster views
  - ErrorResponse: error, message

# Domain Types

  - Poll, Option: the stored poll record; its JSON shape is also the share
    payload, so field names are fixed
  - PollResults, OptionResult: derived totals and rounded percentages
  - Change: store notification
  - VoterRecord: one roster row; Text accepts JSON strings, numbers,
    booleans and null
  - SurnameCount, CountBucket, RosterSummary: dashboard aggregates
*/
package models
