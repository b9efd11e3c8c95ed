package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openbooks/openbooks/internal/adapter/http/dto"
	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
)

// PostingService defines the posting behavior needed by TransactionHandler.
type PostingService interface {
	PostTransaction(ctx context.Context, input usecase.PostTransactionInput) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*domain.Transaction, []*domain.Entry, error)
	NextSequenceNumber(ctx context.Context, businessID string) (int64, error)
}

// JournalService defines the reporting behavior needed by TransactionHandler.
type JournalService interface {
	ListJournal(ctx context.Context, input usecase.ListJournalInput) (*usecase.JournalReport, error)
}

// BalanceService defines the recalculation behavior needed by TransactionHandler.
type BalanceService interface {
	Recalculate(ctx context.Context, businessID string) error
}

// TransactionHandler handles posting and journal HTTP requests.
type TransactionHandler struct {
	postingUC PostingService
	journalUC JournalService
	balanceUC BalanceService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(
	postingUC PostingService,
	journalUC JournalService,
	balanceUC BalanceService,
) *TransactionHandler {
	return &TransactionHandler{
		postingUC: postingUC,
		journalUC: journalUC,
		balanceUC: balanceUC,
	}
}

// Post posts a new transaction.
func (h *TransactionHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req dto.PostTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	txn, err := h.postingUC.PostTransaction(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to post transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn, nil))
}

// Get retrieves a transaction with its entries.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction ID", err.Error())
		return
	}

	txn, entries, err := h.postingUC.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn, entries))
}

// ListJournal lists a business's transactions over a date range.
func (h *TransactionHandler) ListJournal(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "id")

	from, err := parseDateQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}
	to, err := parseDateQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	report, err := h.journalUC.ListJournal(r.Context(), usecase.ListJournalInput{
		BusinessID: businessID,
		From:       from,
		To:         to,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list journal", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.JournalFromReport(report))
}

// NextSequence returns the advisory next sequence number for a business.
func (h *TransactionHandler) NextSequence(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "id")
	if businessID == "" {
		writeError(w, http.StatusBadRequest, "missing business ID", "")
		return
	}

	seq, err := h.postingUC.NextSequenceNumber(r.Context(), businessID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get next sequence", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NextSequenceResponse{SequenceNumber: seq})
}

// Recalculate rebuilds every account balance of a business from its entries.
func (h *TransactionHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "id")
	if businessID == "" {
		writeError(w, http.StatusBadRequest, "missing business ID", "")
		return
	}

	if err := h.balanceUC.Recalculate(r.Context(), businessID); err != nil {
		writeError(w, mapDomainError(err), "failed to recalculate balances", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseDateQuery(r *http.Request, key string) (time.Time, error) {
	return time.Parse("2006-01-02", r.URL.Query().Get(key))
}
