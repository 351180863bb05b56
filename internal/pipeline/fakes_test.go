package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// fakeObjectStore is an in-memory ObjectStore. Objects are keyed by
// "bucket/path". failPut, when set, rejects writes for that file path.
type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string]fakeObject
	buckets map[string]bool
	failPut string
}

type fakeObject struct {
	data        []byte
	contentType string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		objects: make(map[string]fakeObject),
		buckets: make(map[string]bool),
	}
}

func (s *fakeObjectStore) PutObject(_ context.Context, bucket, path string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failPut != "" && path == s.failPut {
		return errors.New("storage service unavailable")
	}

	s.objects[bucket+"/"+path] = fakeObject{data: append([]byte(nil), data...), contentType: contentType}
	return nil
}

func (s *fakeObjectStore) BucketExists(_ context.Context, bucket string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buckets[bucket], nil
}

func (s *fakeObjectStore) CreateBucket(_ context.Context, bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets[bucket] = true
	return nil
}

func (s *fakeObjectStore) get(bucket, path string) (fakeObject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[bucket+"/"+path]
	return obj, ok
}

// fakeWarehouse records submitted load jobs. failTable, when set,
// fails the job for that table at Wait time; failSubmit rejects the
// submission itself.
type fakeWarehouse struct {
	mu         sync.Mutex
	submitted  []submittedLoad
	failTable  string
	failSubmit string
}

type submittedLoad struct {
	table     TableRef
	sourceURI string
	cfg       LoadConfig
}

func (w *fakeWarehouse) SubmitLoad(_ context.Context, table TableRef, sourceURI string, cfg LoadConfig) (LoadJob, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.failSubmit != "" && table.Table == w.failSubmit {
		return nil, fmt.Errorf("table %s: load rejected", table.Table)
	}

	w.submitted = append(w.submitted, submittedLoad{table: table, sourceURI: sourceURI, cfg: cfg})

	if w.failTable != "" && table.Table == w.failTable {
		return &fakeJob{err: fmt.Errorf("table %s: load job failed", table.Table)}, nil
	}
	return &fakeJob{}, nil
}

func (w *fakeWarehouse) loads() []submittedLoad {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]submittedLoad(nil), w.submitted...)
}

type fakeJob struct {
	err error
}

func (j *fakeJob) Wait(context.Context) error { return j.err }
