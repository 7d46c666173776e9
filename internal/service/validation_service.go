package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"codeventure_gateway/internal/gateway"
	"codeventure_gateway/internal/model"
	"codeventure_gateway/internal/util"
	"codeventure_gateway/pkg/logger"

	"go.uber.org/zap"
)

// ValidationResult is what the UI renders after a run: the printed (or
// matched) value and the verdict. A heuristic miss is reported through
// Error with IsCorrect=false; it is not a failure of the call itself.
type ValidationResult struct {
	Output    string `json:"output"`
	IsCorrect bool   `json:"isCorrect"`
	Error     string `json:"error,omitempty"`
}

// Celebration timing is cosmetic: the success notification fires a
// beat after the result so the UI can settle first.
const celebrationDelay = 1500 * time.Millisecond

// First string literal handed to the language's print primitive. A
// best-effort heuristic, not a parser: variables, expressions and
// multiple statements are out of its reach, and that is a documented
// limitation rather than a defect.
var printPatterns = map[string]*regexp.Regexp{
	model.LangPython:     regexp.MustCompile(`print\s*\(\s*["'](.+?)["']\s*\)`),
	model.LangJavaScript: regexp.MustCompile("console\\.log\\s*\\(\\s*[\"'`](.+?)[\"'`]\\s*\\)"),
	model.LangTypeScript: regexp.MustCompile("console\\.log\\s*\\(\\s*[\"'`](.+?)[\"'`]\\s*\\)"),
}

var printPrimitive = map[string]string{
	model.LangPython:     "print()",
	model.LangJavaScript: "console.log()",
	model.LangTypeScript: "console.log()",
}

type ValidationService struct {
	invoker gateway.Invoker
	tokens  TokenSource

	delay  time.Duration
	notify func(lessonID string)
}

func NewValidationService(invoker gateway.Invoker, tokens TokenSource) *ValidationService {
	s := &ValidationService{
		invoker: invoker,
		tokens:  tokens,
		delay:   celebrationDelay,
	}
	s.notify = func(lessonID string) {
		logger.Log.Info("lesson solved", zap.String("lesson_id", lessonID))
	}
	return s
}

// SetNotifier replaces the success hook (UI push, XP toast). The hook
// still fires on the fixed delay.
func (s *ValidationService) SetNotifier(fn func(lessonID string)) {
	if fn != nil {
		s.notify = fn
	}
}

// Validate decides whether submitted code satisfies the expected
// output. Markup languages are checked by containment; the rest go to
// the remote validator when a session exists and to the local print
// heuristic otherwise (or when the remote is unreachable).
func (s *ValidationService) Validate(ctx context.Context, lessonID, language, code, expectedOutput string) (ValidationResult, error) {
	var result ValidationResult

	switch language {
	case model.LangHTML, model.LangCSS:
		result = validateMarkup(code, expectedOutput)
	case model.LangPython, model.LangJavaScript, model.LangTypeScript:
		if token, ok := s.tokens.AccessToken(); ok {
			remote, err := s.validateRemote(ctx, token, language, code, expectedOutput)
			if err != nil {
				logger.Log.Warn("remote validation failed, using local heuristic",
					zap.String("lesson_id", lessonID), zap.Error(err))
				result = validateByPrintHeuristic(language, code, expectedOutput)
			} else {
				result = remote
			}
		} else {
			result = validateByPrintHeuristic(language, code, expectedOutput)
		}
	default:
		return ValidationResult{}, fmt.Errorf("%w: %s", util.ErrUnknownLanguage, language)
	}

	if result.IsCorrect {
		notify := s.notify
		time.AfterFunc(s.delay, func() { notify(lessonID) })
	}
	return result, nil
}

func (s *ValidationService) validateRemote(ctx context.Context, token, language, code, expectedOutput string) (ValidationResult, error) {
	var reply struct {
		Output    string `json:"output"`
		IsCorrect bool   `json:"isCorrect"`
		Error     string `json:"error"`
	}

	err := s.invoker.Invoke(ctx, gateway.OpValidateCode, map[string]any{
		"code":           code,
		"language":       language,
		"expectedOutput": expectedOutput,
		"accessToken":    token,
	}, &reply)
	if err != nil {
		return ValidationResult{}, err
	}

	return ValidationResult{
		Output:    reply.Output,
		IsCorrect: reply.IsCorrect,
		Error:     reply.Error,
	}, nil
}

// Markup is never executed; the submission passes when it contains the
// expected output verbatim.
func validateMarkup(code, expectedOutput string) ValidationResult {
	if strings.Contains(code, expectedOutput) {
		return ValidationResult{Output: expectedOutput, IsCorrect: true}
	}
	return ValidationResult{
		IsCorrect: false,
		Error:     fmt.Sprintf("expected markup not found: %s", expectedOutput),
	}
}

func validateByPrintHeuristic(language, code, expectedOutput string) ValidationResult {
	pattern := printPatterns[language]
	match := pattern.FindStringSubmatch(code)
	if match == nil {
		return ValidationResult{
			IsCorrect: false,
			Error:     fmt.Sprintf("Error: No %s statement found", printPrimitive[language]),
		}
	}

	printed := match[1]
	return ValidationResult{
		Output:    printed,
		IsCorrect: printed == expectedOutput,
	}
}
