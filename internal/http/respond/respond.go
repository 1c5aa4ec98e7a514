package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

// WriteJSON encodes v with the proper content type.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteError maps the ledger error taxonomy onto distinct client statuses.
// Self-approval and immutability failures are not retryable with the same
// request, which their statuses reflect.
func WriteError(w http.ResponseWriter, err error) {
	var (
		notFound     *ledger.NotFoundError
		validation   *ledger.ValidationError
		conflict     *ledger.ConflictError
		unbalanced   *ledger.UnbalancedEntryError
		empty        *ledger.EmptyEntryError
		badAccount   *ledger.InvalidAccountError
		invalidState *ledger.InvalidStateError
		selfApproval *ledger.SelfApprovalError
		immutable    *ledger.ImmutableEntryError
		cycle        *ledger.CycleError
	)

	switch {
	case errors.As(err, &notFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &validation), errors.As(err, &unbalanced),
		errors.As(err, &empty), errors.As(err, &badAccount), errors.As(err, &cycle):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &conflict), errors.As(err, &invalidState), errors.As(err, &immutable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &selfApproval):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		slog.Error("internal error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
