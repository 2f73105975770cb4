package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Verdict is a classifier's judgement of one request.
type Verdict struct {
	Suspicious bool
	Rule       string
}

// Classifier inspects the request line for known abuse patterns. Verdicts
// are advisory: all data access is bound through query parameters, so a
// missed pattern cannot reach the database as SQL.
type Classifier interface {
	Classify(path, query string) Verdict
}

// PatternClassifier flags requests whose path or query contains one of a
// fixed set of substrings. High false-positive and false-negative rates;
// useful only as a logging signal.
type PatternClassifier struct {
	patterns []string
}

var defaultPatterns = []string{
	"union select",
	"../",
	"<script",
	"etc/passwd",
	"information_schema",
}

func NewPatternClassifier(patterns ...string) *PatternClassifier {
	if len(patterns) == 0 {
		patterns = defaultPatterns
	}
	return &PatternClassifier{patterns: patterns}
}

func (c *PatternClassifier) Classify(path, query string) Verdict {
	haystack := strings.ToLower(path + "?" + query)

	for _, pattern := range c.patterns {
		if strings.Contains(haystack, pattern) {
			return Verdict{Suspicious: true, Rule: pattern}
		}
	}

	return Verdict{}
}

// SecurityMiddleware logs suspicious requests without blocking them.
func SecurityMiddleware(classifier Classifier, logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		verdict := classifier.Classify(ctx.Request.URL.Path, ctx.Request.URL.RawQuery)

		if verdict.Suspicious {
			logger.Warn("suspicious request",
				zap.String("path", ctx.Request.URL.Path),
				zap.String("rule", verdict.Rule),
				zap.String("client_ip", ctx.ClientIP()),
			)
		}

		ctx.Next()
	}
}
