package output

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundiconnect/fundictl/pkg/marketplace"
	"github.com/fundiconnect/fundictl/pkg/viewmodel"
)

func TestNewJSONLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf, "user-123")

	assert.NotNil(t, w)
	assert.Equal(t, "user-123", w.viewer)
}

func TestJSONLWriter_WriteJob(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf, "user-123")

	updated := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	job := &JobRecord{
		ID:            "job-1",
		Title:         "Fix leaking kitchen sink",
		Role:          viewmodel.RoleCustomer,
		Status:        marketplace.JobStatusAssigned,
		DisplayStatus: viewmodel.DisplayAssigned,
		Label:         "Assigned",
		Urgency:       marketplace.UrgencyHigh,
		Proposals:     3,
		UpdatedAt:     &updated,
	}

	err := w.WriteJob(context.Background(), job)
	require.NoError(t, err)

	// Parse the output
	var record Record
	err = json.Unmarshal(buf.Bytes(), &record)
	require.NoError(t, err)

	assert.Equal(t, TypeJob, record.Type)
	assert.Equal(t, "user-123", record.Viewer)
	assert.False(t, record.TS.IsZero())

	// Parse the data payload
	var jobData JobRecord
	err = json.Unmarshal(record.Data, &jobData)
	require.NoError(t, err)

	assert.Equal(t, "job-1", jobData.ID)
	assert.Equal(t, "Fix leaking kitchen sink", jobData.Title)
	assert.Equal(t, viewmodel.RoleCustomer, jobData.Role)
	assert.Equal(t, marketplace.JobStatusAssigned, jobData.Status)
	assert.Equal(t, "Assigned", jobData.Label)
	assert.Equal(t, 3, jobData.Proposals)
	require.NotNil(t, jobData.UpdatedAt)
	assert.Equal(t, updated, *jobData.UpdatedAt)
}

func TestJSONLWriter_WriteSummary(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf, "user-123")

	sum := &SummaryRecord{
		Counts: viewmodel.RoleCounts{
			AsCustomer: viewmodel.Counts{Posted: 2, Completed: 1, Total: 3},
			AsFundi:    viewmodel.Counts{InProgress: 1, Total: 1},
		},
	}

	err := w.WriteSummary(context.Background(), sum)
	require.NoError(t, err)

	var record Record
	err = json.Unmarshal(buf.Bytes(), &record)
	require.NoError(t, err)

	assert.Equal(t, TypeSummary, record.Type)

	var sumData SummaryRecord
	err = json.Unmarshal(record.Data, &sumData)
	require.NoError(t, err)

	assert.Equal(t, 2, sumData.Counts.AsCustomer.Posted)
	assert.Equal(t, 3, sumData.Counts.AsCustomer.Total)
	assert.Equal(t, 1, sumData.Counts.AsFundi.InProgress)
}

func TestJSONLWriter_WriteNotification(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf, "user-123")

	n := &NotificationRecord{
		ID:      "notif-1",
		Title:   "New proposal",
		Message: "A fundi submitted a proposal for your job",
		JobID:   "job-1",
		Read:    false,
	}

	err := w.WriteNotification(context.Background(), n)
	require.NoError(t, err)

	var record Record
	err = json.Unmarshal(buf.Bytes(), &record)
	require.NoError(t, err)

	assert.Equal(t, TypeNotification, record.Type)

	var nData NotificationRecord
	err = json.Unmarshal(record.Data, &nData)
	require.NoError(t, err)

	assert.Equal(t, "notif-1", nData.ID)
	assert.Equal(t, "job-1", nData.JobID)
	assert.False(t, nData.Read)
}

func TestJSONLWriter_WriteError(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf, "user-123")

	errRec := &ErrorRecord{Message: "job listing unavailable"}

	err := w.WriteError(context.Background(), errRec)
	require.NoError(t, err)

	var record Record
	err = json.Unmarshal(buf.Bytes(), &record)
	require.NoError(t, err)

	assert.Equal(t, TypeError, record.Type)

	var errData ErrorRecord
	err = json.Unmarshal(record.Data, &errData)
	require.NoError(t, err)

	assert.Equal(t, "job listing unavailable", errData.Message)
}

func TestJSONLWriter_NewlineTerminated(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf, "user-123")

	err := w.WriteJob(context.Background(), &JobRecord{ID: "job-1"})
	require.NoError(t, err)

	err = w.WriteJob(context.Background(), &JobRecord{ID: "job-2"})
	require.NoError(t, err)

	// Output should be two lines
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)

	// Each line should be valid JSON
	for _, line := range lines {
		var record Record
		err := json.Unmarshal([]byte(line), &record)
		assert.NoError(t, err)
	}
}

func TestJSONLWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf, "user-123")

	err := w.Close()
	require.NoError(t, err)

	// Writing after close should fail
	err = w.WriteJob(context.Background(), &JobRecord{ID: "job-1"})
	assert.ErrorIs(t, err, ErrWriterClosed)
}

func TestJSONLWriter_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf, "user-123")

	const numWriters = 10
	const writesPerWriter = 100

	var wg sync.WaitGroup
	wg.Add(numWriters)

	for i := 0; i < numWriters; i++ {
		go func(writerID int) {
			defer wg.Done()
			for j := 0; j < writesPerWriter; j++ {
				job := &JobRecord{
					ID:        "job-1",
					Proposals: writerID*writesPerWriter + j,
				}
				_ = w.WriteJob(context.Background(), job)
			}
		}(i)
	}

	wg.Wait()

	// Verify all lines are complete JSON objects (no interleaving)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, numWriters*writesPerWriter)

	for i, line := range lines {
		var record Record
		err := json.Unmarshal([]byte(line), &record)
		assert.NoError(t, err, "line %d should be valid JSON: %s", i, line)
	}
}

func TestJSONLWriter_ContextCancellation(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf, "user-123")

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := w.WriteJob(ctx, &JobRecord{ID: "job-1"})
	assert.ErrorIs(t, err, context.Canceled)

	// Buffer should be empty (nothing written)
	assert.Empty(t, buf.String())
}

func TestJSONLWriter_WriteFailure(t *testing.T) {
	// Create a writer that always fails
	failWriter := &failingWriter{err: errors.New("disk full")}
	w := NewJSONLWriter(failWriter, "user-123")

	err := w.WriteJob(context.Background(), &JobRecord{ID: "job-1"})
	require.Error(t, err)

	var writeErr *WriteError
	assert.True(t, errors.As(err, &writeErr))
	assert.Equal(t, "write", writeErr.Op)
}

// failingWriter is an io.Writer that always returns an error.
type failingWriter struct {
	err error
}

func (f *failingWriter) Write(p []byte) (n int, err error) {
	return 0, f.err
}

func TestJSONLWriter_ShortWrite(t *testing.T) {
	// Create a writer that simulates short writes (returns n < len(p) with nil error)
	shortWriter := &shortWriteWriter{bytesPerWrite: 10}
	w := NewJSONLWriter(shortWriter, "user-123")

	job := &JobRecord{
		ID:        "job-1",
		Title:     "Rewire three-bedroom house",
		Proposals: 5,
	}

	err := w.WriteJob(context.Background(), job)
	require.NoError(t, err)

	// Verify complete output despite short writes
	lines := strings.Split(strings.TrimSpace(shortWriter.buf.String()), "\n")
	assert.Len(t, lines, 1)

	var record Record
	err = json.Unmarshal([]byte(lines[0]), &record)
	assert.NoError(t, err, "output should be valid JSON despite short writes")
	assert.Equal(t, TypeJob, record.Type)
}

func TestJSONLWriter_ZeroWrite(t *testing.T) {
	// Create a writer that returns 0 bytes written with nil error (pathological case)
	zeroWriter := &zeroWriteWriter{}
	w := NewJSONLWriter(zeroWriter, "user-123")

	err := w.WriteJob(context.Background(), &JobRecord{ID: "job-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

// shortWriteWriter simulates an io.Writer that performs short writes.
// It writes at most bytesPerWrite bytes per call, returning nil error.
type shortWriteWriter struct {
	buf           bytes.Buffer
	bytesPerWrite int
}

func (s *shortWriteWriter) Write(p []byte) (n int, err error) {
	if len(p) > s.bytesPerWrite {
		p = p[:s.bytesPerWrite]
	}
	return s.buf.Write(p)
}

// zeroWriteWriter returns 0 bytes written with nil error.
type zeroWriteWriter struct{}

func (z *zeroWriteWriter) Write(p []byte) (n int, err error) {
	return 0, nil
}

func TestNewJobRecord(t *testing.T) {
	updated := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	price := 4500.0
	job := &marketplace.Job{
		ID:         "job-9",
		CustomerID: marketplace.Ref("cust-1"),
		FundiID:    marketplace.Ref("fundi-7"),
		ServiceID:  marketplace.Ref("svc-plumbing"),
		JobDetails: marketplace.JobDetails{
			Title:   "Install water heater",
			Urgency: marketplace.UrgencyMedium,
		},
		Status:      marketplace.JobStatusAssigned,
		Proposals:   []marketplace.Proposal{{FundiID: marketplace.Ref("fundi-7")}},
		AgreedPrice: &price,
		UpdatedAt:   updated,
	}

	t.Run("AssignedFundi", func(t *testing.T) {
		rec := NewJobRecord(job, "fundi-7")

		assert.Equal(t, "job-9", rec.ID)
		assert.Equal(t, "Install water heater", rec.Title)
		assert.Equal(t, viewmodel.RoleFundi, rec.Role)
		assert.Equal(t, viewmodel.DisplayHired, rec.DisplayStatus)
		assert.Equal(t, "Hired", rec.Label)
		assert.Equal(t, 1, rec.Proposals)
		require.NotNil(t, rec.AgreedPrice)
		assert.Equal(t, 4500.0, *rec.AgreedPrice)
		require.NotNil(t, rec.UpdatedAt)
		assert.Equal(t, updated, *rec.UpdatedAt)
	})

	t.Run("Customer", func(t *testing.T) {
		rec := NewJobRecord(job, "cust-1")

		assert.Equal(t, viewmodel.RoleCustomer, rec.Role)
		assert.Equal(t, viewmodel.DisplayAssigned, rec.DisplayStatus)
	})

	t.Run("Unrelated", func(t *testing.T) {
		rec := NewJobRecord(job, "someone-else")

		assert.Equal(t, viewmodel.RoleUnrelated, rec.Role)
	})

	t.Run("PendingProposer", func(t *testing.T) {
		// Still-open job with no fundi assigned; the bidder must see the
		// fundi vocabulary, not the customer's "Posted".
		open := &marketplace.Job{
			ID:         "job-11",
			CustomerID: marketplace.Ref("cust-1"),
			ServiceID:  marketplace.Ref("svc-plumbing"),
			JobDetails: marketplace.JobDetails{Title: "Unblock drain"},
			Status:     marketplace.JobStatusPosted,
			Proposals: []marketplace.Proposal{{
				FundiID: marketplace.Ref("fundi-7"),
				Status:  marketplace.ProposalPending,
			}},
		}

		rec := NewJobRecord(open, "fundi-7")
		assert.Equal(t, viewmodel.RoleFundi, rec.Role)
		assert.Equal(t, viewmodel.DisplayProposalSent, rec.DisplayStatus)
		assert.Equal(t, "Proposal Sent", rec.Label)

		// A different viewer still sees the customer vocabulary.
		other := NewJobRecord(open, "someone-else")
		assert.Equal(t, viewmodel.RoleUnrelated, other.Role)
		assert.Equal(t, viewmodel.DisplayPosted, other.DisplayStatus)
	})

	t.Run("UntitledFallback", func(t *testing.T) {
		bare := &marketplace.Job{ID: "job-10", Status: marketplace.JobStatusPosted}
		rec := NewJobRecord(bare, "")

		assert.Equal(t, "(untitled job)", rec.Title)
	})
}
