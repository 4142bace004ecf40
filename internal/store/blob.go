package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pattarin/rianthai/ent"
	"github.com/pattarin/rianthai/ent/stateblob"
)

// blobRepo reads and writes keyed JSON documents through the ent client.
type blobRepo struct {
	client *ent.Client
}

// get unmarshals the document at key into out.
// Returns false if the key has never been written.
func (r blobRepo) get(ctx context.Context, key string, out any) (bool, error) {
	row, err := r.client.StateBlob.Query().
		Where(stateblob.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("query blob %s: %w", key, err)
	}
	if err := fromDocMap(row.Data, out); err != nil {
		return false, fmt.Errorf("decode blob %s: %w", key, err)
	}
	return true, nil
}

// put upserts the document at key.
func (r blobRepo) put(ctx context.Context, key string, doc any) error {
	m, err := toDocMap(doc)
	if err != nil {
		return fmt.Errorf("marshal blob %s: %w", key, err)
	}

	row, err := r.client.StateBlob.Query().
		Where(stateblob.KeyEQ(key)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = row.Update().SetData(m).Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.StateBlob.Create().SetKey(key).SetData(m).Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save blob %s: %w", key, err)
	}
	return nil
}

// lessonsDoc, startedDoc and versionDoc are the on-disk envelopes.
type lessonsDoc struct {
	Courses map[string]map[string]LessonProgressData `json:"courses"`
}

type startedDoc struct {
	Courses map[string][]string `json:"courses"`
}

type versionDoc struct {
	Value uint64 `json:"value"`
}

type favoritesDoc struct {
	Courses map[string][]string `json:"courses"`
}

// blobProgressRepo implements ProgressRepo over the blob store.
type blobProgressRepo struct {
	blobs blobRepo
}

func (r *blobProgressRepo) Load(ctx context.Context) (*ProgressSnapshot, error) {
	var lessons lessonsDoc
	var started startedDoc
	var version versionDoc

	okLessons, err := r.blobs.get(ctx, KeyProgressLessons, &lessons)
	if err != nil {
		return nil, err
	}
	okStarted, err := r.blobs.get(ctx, KeyProgressStarted, &started)
	if err != nil {
		return nil, err
	}
	okVersion, err := r.blobs.get(ctx, KeyProgressVersion, &version)
	if err != nil {
		return nil, err
	}

	if !okLessons && !okStarted && !okVersion {
		return nil, nil
	}

	snap := &ProgressSnapshot{
		Lessons: lessons.Courses,
		Started: started.Courses,
		Version: version.Value,
	}
	if snap.Lessons == nil {
		snap.Lessons = make(map[string]map[string]LessonProgressData)
	}
	if snap.Started == nil {
		snap.Started = make(map[string][]string)
	}
	return snap, nil
}

func (r *blobProgressRepo) Save(ctx context.Context, snap *ProgressSnapshot) error {
	if err := r.blobs.put(ctx, KeyProgressLessons, lessonsDoc{Courses: snap.Lessons}); err != nil {
		return err
	}
	if err := r.blobs.put(ctx, KeyProgressStarted, startedDoc{Courses: snap.Started}); err != nil {
		return err
	}
	return r.blobs.put(ctx, KeyProgressVersion, versionDoc{Value: snap.Version})
}

// blobFavoritesRepo implements FavoritesRepo over the blob store.
type blobFavoritesRepo struct {
	blobs blobRepo
}

func (r *blobFavoritesRepo) Load(ctx context.Context) (map[string][]string, error) {
	var doc favoritesDoc
	ok, err := r.blobs.get(ctx, KeyFavorites, &doc)
	if err != nil || !ok {
		return nil, err
	}
	return doc.Courses, nil
}

func (r *blobFavoritesRepo) Save(ctx context.Context, favs map[string][]string) error {
	return r.blobs.put(ctx, KeyFavorites, favoritesDoc{Courses: favs})
}

// toDocMap converts a document struct to map[string]any for ent JSON storage.
func toDocMap(doc any) (map[string]any, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromDocMap converts an ent JSON map back into a document struct.
func fromDocMap(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
