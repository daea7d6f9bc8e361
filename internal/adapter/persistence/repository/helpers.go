package repository

import (
	"errors"
	"os"
	"strconv"
	"time"

	"societyhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// wrapConditional translates DynamoDB conditional-write losses into the
// repository-neutral sentinel the usecases match on. Transaction
// cancellations count when any reason is a failed condition check.
func wrapConditional(err error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrConditionalCheckFailed
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return interfaces.ErrConditionalCheckFailed
			}
		}
	}
	var tip *types.TransactionInProgressException
	if errors.As(err, &tip) {
		return interfaces.ErrTransactionUnresolved
	}
	return err
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
