// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strings"

	"github.com/danielhkuo/weekly-trivia/models"
)

// PerfectBonus is the flat extra point for answering every question in a
// round correctly.
const PerfectBonus = 1

// AnswerMatches reports whether the submitted text matches the reference
// answer. Matching is an exact string comparison after stripping surrounding
// whitespace, ignoring case.
func AnswerMatches(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}

// ScoreRound grades a complete answer set against the round's questions.
// It returns one graded Answer per question (in question order) and the
// points earned: one per correct answer, plus PerfectBonus if and only if
// every answer is correct. The submitted map must already hold an entry for
// every question id.
func ScoreRound(questions []models.Question, submitted map[int64]string) ([]models.Answer, int) {
	answers := make([]models.Answer, 0, len(questions))
	correct := 0

	for _, q := range questions {
		text := submitted[q.ID]
		matched := AnswerMatches(text, q.CorrectAnswer)
		if matched {
			correct++
		}
		answers = append(answers, models.Answer{
			QuestionID: q.ID,
			AnswerText: text,
			IsCorrect:  matched,
		})
	}

	points := correct
	if len(questions) > 0 && correct == len(questions) {
		points += PerfectBonus
	}

	return answers, points
}
