package ehrclient

import (
	"context"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/fhirmapper"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

type portal struct {
	mu      sync.Mutex
	hits    map[string]int
	handler func(w http.ResponseWriter, r *http.Request, hit int)
}

func (p *portal) count(route string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits[route]
}

func (p *portal) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + r.URL.Path
	p.mu.Lock()
	p.hits[route]++
	hit := p.hits[route]
	p.mu.Unlock()
	p.handler(w, r, hit)
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status_code": status,
		"success":     false,
		"error":       message,
	})
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, hit int)) (*Client, *portal, *fakeClock) {
	t.Helper()

	p := &portal{hits: make(map[string]int), handler: handler}
	server := httptest.NewServer(p)
	t.Cleanup(server.Close)

	clock := &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	client := New(Config{BaseURL: server.URL + "/", StaleAfter: 30 * time.Second, Log: zap.NewNop()})
	client.now = clock.Now
	return client, p, clock
}

func patientNamed(hit int) responses.Patient {
	names := []string{"", "Smith", "Jones", "Brown"}
	if hit >= len(names) {
		hit = len(names) - 1
	}
	return responses.Patient{ID: "p1", Family: names[hit], Given: "Ann"}
}

func TestFirstReadFetchesThenServesFromCache(t *testing.T) {
	client, p, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, hit int) {
		writeData(w, http.StatusOK, patientNamed(hit))
	})
	ctx := context.Background()

	first := client.Patient(ctx, "p1")
	require.NoError(t, first.Err)
	assert.False(t, first.IsLoading)
	assert.Equal(t, "Smith", first.Data.Family)

	second := client.Patient(ctx, "p1")
	require.NoError(t, second.Err)
	assert.False(t, second.IsLoading)
	assert.Equal(t, "Smith", second.Data.Family)

	assert.Equal(t, 1, p.count("GET /api/patients/p1"))
}

func TestStaleReadReturnsCachedDataAndRevalidates(t *testing.T) {
	client, p, clock := newTestClient(t, func(w http.ResponseWriter, r *http.Request, hit int) {
		writeData(w, http.StatusOK, patientNamed(hit))
	})
	ctx := context.Background()

	client.Patient(ctx, "p1")
	clock.Advance(31 * time.Second)

	stale := client.Patient(ctx, "p1")
	require.NoError(t, stale.Err)
	assert.True(t, stale.IsLoading)
	assert.Equal(t, "Smith", stale.Data.Family)

	client.Wait()

	fresh := client.Patient(ctx, "p1")
	assert.False(t, fresh.IsLoading)
	assert.Equal(t, "Jones", fresh.Data.Family)
	assert.Equal(t, 2, p.count("GET /api/patients/p1"))
}

func TestFailedRevalidationKeepsCachedValue(t *testing.T) {
	client, _, clock := newTestClient(t, func(w http.ResponseWriter, r *http.Request, hit int) {
		if hit > 1 {
			writeFailure(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeData(w, http.StatusOK, patientNamed(hit))
	})
	ctx := context.Background()

	client.Patient(ctx, "p1")
	clock.Advance(time.Minute)
	client.Patient(ctx, "p1")
	client.Wait()

	assert.True(t, client.cached(PatientKey("p1")))
	again := client.Patient(ctx, "p1")
	assert.Equal(t, "Smith", again.Data.Family)
}

func TestConcurrentReadsShareOneRequest(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	client, p, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, hit int) {
		once.Do(func() { close(started) })
		<-release
		writeData(w, http.StatusOK, patientNamed(hit))
	})
	ctx := context.Background()

	const readers = 8
	results := make([]Query[responses.Patient], readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = client.Patient(ctx, "p1")
		}(i)
	}

	<-started
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, 1, p.count("GET /api/patients/p1"))
	for _, result := range results {
		require.NoError(t, result.Err)
		assert.Equal(t, "Smith", result.Data.Family)
	}
}

func TestPatientsDecodesPagination(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, hit int) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "1", r.URL.Query().Get("_count"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []responses.Patient{patientNamed(1)},
			"pagination": responses.Pagination{
				Total: 3, Page: 2, Count: 1, HasNext: true, HasPrev: true,
			},
		})
	})

	result := client.Patients(context.Background(), 2, 1)
	require.NoError(t, result.Err)
	require.Len(t, result.Data.Data, 1)
	assert.Equal(t, responses.Pagination{Total: 3, Page: 2, Count: 1, HasNext: true, HasPrev: true}, result.Data.Pagination)
}

func TestUpdatePatientInvalidatesListAndPatient(t *testing.T) {
	client, p, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, hit int) {
		switch r.Method + " " + r.URL.Path {
		case "GET /api/patients":
			writeData(w, http.StatusOK, []responses.Patient{patientNamed(hit)})
		case "GET /api/appointments":
			writeData(w, http.StatusOK, []responses.Appointment{})
		default:
			writeData(w, http.StatusOK, patientNamed(hit))
		}
	})
	ctx := context.Background()

	client.Patients(ctx, 1, 10)
	client.Patient(ctx, "p1")
	client.Appointments(ctx, "p1")

	family := "Jones"
	_, err := client.UpdatePatient(ctx, "p1", &requests.UpdatePatient{Family: &family})
	require.NoError(t, err)
	client.Wait()

	assert.Equal(t, 1, p.count("PUT /api/patients/p1"))
	assert.Equal(t, 2, p.count("GET /api/patients"))
	assert.Equal(t, 2, p.count("GET /api/patients/p1"))
	assert.Equal(t, 1, p.count("GET /api/appointments"))
}

func TestFailedWriteInvalidatesNothing(t *testing.T) {
	client, p, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, hit int) {
		if r.Method == http.MethodPost {
			writeFailure(w, http.StatusBadRequest, "Family name, given name, and birth date are required")
			return
		}
		writeData(w, http.StatusOK, []responses.Patient{})
	})
	ctx := context.Background()

	client.Patients(ctx, 1, 10)
	_, err := client.CreatePatient(ctx, &requests.CreatePatient{})
	client.Wait()

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, 1, p.count("GET /api/patients"))
}

func TestRemovePatientDropsEntryWithoutRefetch(t *testing.T) {
	client, p, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, hit int) {
		switch r.Method + " " + r.URL.Path {
		case "GET /api/patients":
			writeData(w, http.StatusOK, []responses.Patient{})
		case "DELETE /api/patients/p1":
			writeData(w, http.StatusOK, responses.DeletedResource{ID: "p1"})
		default:
			writeData(w, http.StatusOK, patientNamed(hit))
		}
	})
	ctx := context.Background()

	client.Patients(ctx, 1, 10)
	client.Patient(ctx, "p1")

	require.NoError(t, client.RemovePatient(ctx, "p1"))
	client.Wait()

	assert.False(t, client.cached(PatientKey("p1")))
	assert.Equal(t, 1, p.count("GET /api/patients/p1"))
	assert.Equal(t, 2, p.count("GET /api/patients"))
}

func TestCreateAllergyInvalidatesOnlyThatPatient(t *testing.T) {
	client, p, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, hit int) {
		switch r.Method {
		case http.MethodPost:
			writeData(w, http.StatusOK, responses.Allergy{ID: "a1"})
		default:
			if r.URL.Path == "/api/patient-details" {
				writeData(w, http.StatusOK, responses.PatientDetails{})
				return
			}
			writeData(w, http.StatusOK, []responses.Allergy{})
		}
	})
	ctx := context.Background()

	client.Allergies(ctx, "p1")
	client.Allergies(ctx, "p2")
	client.PatientDetails(ctx, "p1")
	client.Conditions(ctx, "p1")

	_, err := client.CreateAllergy(ctx, &requests.CreateAllergy{PatientID: "p1", Code: "91935009", Description: "Peanut allergy"})
	require.NoError(t, err)
	client.Wait()

	assert.Equal(t, 3, p.count("GET /api/patient-details/allergies"))
	assert.Equal(t, 2, p.count("GET /api/patient-details"))
	assert.Equal(t, 1, p.count("GET /api/patient-details/conditions"))
}

func TestReadErrorIsReportedAndNotCached(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, hit int) {
		writeFailure(w, http.StatusNotFound, "Patient not found")
	})

	result := client.Patient(context.Background(), "missing")

	var apiErr *APIError
	require.ErrorAs(t, result.Err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Patient not found", apiErr.Message)
	assert.False(t, client.cached(PatientKey("missing")))
}

func TestMutateReplacesCachedValue(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, hit int) {
		writeData(w, http.StatusOK, patientNamed(hit))
	})
	ctx := context.Background()

	first := client.Patient(ctx, "p1")
	require.NoError(t, first.Mutate(ctx))

	assert.Equal(t, "Jones", client.Patient(ctx, "p1").Data.Family)
}

func TestClinicalKeysFollowKind(t *testing.T) {
	assert.Equal(t, CacheKey{Kind: Kind("medications"), ID: "p1"}, ClinicalKey(fhirmapper.ClinicalMedications, "p1"))
	assert.NotEqual(t, ClinicalKey(fhirmapper.ClinicalAllergies, "p1"), ClinicalKey(fhirmapper.ClinicalConditions, "p1"))
}
