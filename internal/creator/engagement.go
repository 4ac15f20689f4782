// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/taibuivan/creatorhub/pkg/pointer"
	"github.com/taibuivan/creatorhub/pkg/slice"
)

// # Engagement Rate

/*
Enrich derives the engagement rate of a creator.

Description: Counters are read with integer-prefix semantics ("42 views"
reads as 42, "0x1A" as 26). A nil or empty counter reads as 0. The rate is

	(likes + comments + shares) / views * 100

and falls back to 0 when any counter has no leading digits (whitespace-only
text included) or when the view count is zero. The input record is never modified.

Parameters:
  - creator: *Creator

Returns:
  - EnrichedCreator: Copy of the creator with EngagementRate set (never NaN or Inf)
*/
func Enrich(creator *Creator) EnrichedCreator {
	return EnrichedCreator{
		Creator:        *creator,
		EngagementRate: engagementRate(creator),
	}
}

// EnrichAll enriches a page of creators, preserving order.
func EnrichAll(creators []*Creator) []EnrichedCreator {
	if len(creators) == 0 {
		return make([]EnrichedCreator, 0)
	}
	return slice.Map(creators, Enrich)
}

func engagementRate(creator *Creator) float64 {
	views, okViews := parseCount(creator.ViewCount)
	likes, okLikes := parseCount(creator.LikeCount)
	comments, okComments := parseCount(creator.CommentCount)
	shares, okShares := parseCount(creator.ShareCount)

	if !okViews || !okLikes || !okComments || !okShares {
		return 0
	}

	if views == 0 {
		return 0
	}

	rate := (likes + comments + shares) / views * 100
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}
	return rate
}

// parseCount reads the leading integer of a stored counter.
//
// A nil or empty counter reads as 0. Otherwise leading whitespace is skipped
// and a "0x" prefix switches to hexadecimal. It reports false when no digit
// follows, which includes text that is only whitespace.
func parseCount(raw *string) (float64, bool) {
	if pointer.Val(raw) == "" {
		return 0, true
	}

	text := strings.TrimLeftFunc(*raw, unicode.IsSpace)

	sign := 1.0
	if text != "" && (text[0] == '+' || text[0] == '-') {
		if text[0] == '-' {
			sign = -1
		}
		text = text[1:]
	}

	if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		return parseHexPrefix(text[2:], sign)
	}

	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	// Digit runs beyond int64 still parse as a (rounded) float.
	value, err := strconv.ParseFloat(text[:end], 64)
	if err != nil {
		return 0, false
	}
	return sign * value, true
}

func parseHexPrefix(text string, sign float64) (float64, bool) {
	value, digits := 0.0, 0
	for _, char := range text {
		var digit int
		switch {
		case char >= '0' && char <= '9':
			digit = int(char - '0')
		case char >= 'a' && char <= 'f':
			digit = int(char-'a') + 10
		case char >= 'A' && char <= 'F':
			digit = int(char-'A') + 10
		default:
			return sign * value, digits > 0
		}
		value = value*16 + float64(digit)
		digits++
	}
	return sign * value, digits > 0
}
