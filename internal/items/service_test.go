package items

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRepo implementa RepositoryAPI para testing.
type fakeRepo struct {
	listCalled   bool
	getCalled    bool
	insertCalled bool
	updateCalled bool
	deleteCalled bool

	listItems []Item
	listErr   error

	getID   int
	getItem *Item
	getErr  error

	insertInput CreateItemInput
	insertItem  Item
	insertErr   error

	updateID    int
	updateInput UpdateItemInput
	updateItem  *Item
	updateErr   error

	deleteID      int
	deleteRemoved bool
	deleteErr     error
}

func (repo *fakeRepo) List(ctx context.Context) ([]Item, error) {
	repo.listCalled = true
	return repo.listItems, repo.listErr
}

func (repo *fakeRepo) GetByID(ctx context.Context, id int) (*Item, error) {
	repo.getCalled = true
	repo.getID = id
	return repo.getItem, repo.getErr
}

func (repo *fakeRepo) Insert(ctx context.Context, input CreateItemInput) (Item, error) {
	repo.insertCalled = true
	repo.insertInput = input
	return repo.insertItem, repo.insertErr
}

func (repo *fakeRepo) Update(ctx context.Context, id int, input UpdateItemInput) (*Item, error) {
	repo.updateCalled = true
	repo.updateID = id
	repo.updateInput = input
	return repo.updateItem, repo.updateErr
}

func (repo *fakeRepo) Delete(ctx context.Context, id int) (bool, error) {
	repo.deleteCalled = true
	repo.deleteID = id
	return repo.deleteRemoved, repo.deleteErr
}

func TestService_Create(t *testing.T) {
	t.Run("trims name and delegates", func(t *testing.T) {
		repo := &fakeRepo{insertItem: Item{ID: 1, Name: "Widget"}}
		service := NewService(repo)

		item, err := service.Create(context.Background(), CreateItemInput{Name: "  Widget  "})

		require.NoError(t, err)
		require.True(t, repo.insertCalled)
		require.Equal(t, "Widget", repo.insertInput.Name)
		require.Equal(t, 1, item.ID)
	})

	t.Run("empty name is invalid", func(t *testing.T) {
		repo := &fakeRepo{}
		service := NewService(repo)

		_, err := service.Create(context.Background(), CreateItemInput{Name: "   "})

		require.ErrorIs(t, err, ErrorInvalidInput)
		require.False(t, repo.insertCalled)
	})

	t.Run("negative quantity is invalid", func(t *testing.T) {
		repo := &fakeRepo{}
		service := NewService(repo)

		quantity := -1
		_, err := service.Create(context.Background(), CreateItemInput{Name: "Widget", Quantity: &quantity})

		require.ErrorIs(t, err, ErrorInvalidInput)
		require.False(t, repo.insertCalled)
	})

	t.Run("negative price is invalid", func(t *testing.T) {
		repo := &fakeRepo{}
		service := NewService(repo)

		price := -0.01
		_, err := service.Create(context.Background(), CreateItemInput{Name: "Widget", Price: &price})

		require.ErrorIs(t, err, ErrorInvalidInput)
		require.False(t, repo.insertCalled)
	})

	t.Run("repo error passes through", func(t *testing.T) {
		repoErr := errors.New("insert failed")
		repo := &fakeRepo{insertErr: repoErr}
		service := NewService(repo)

		_, err := service.Create(context.Background(), CreateItemInput{Name: "Widget"})

		require.ErrorIs(t, err, repoErr)
	})
}

func TestService_List(t *testing.T) {
	t.Run("passes through", func(t *testing.T) {
		repo := &fakeRepo{listItems: []Item{{ID: 1}, {ID: 2}}}
		service := NewService(repo)

		list, err := service.List(context.Background())

		require.NoError(t, err)
		require.Len(t, list, 2)
		require.True(t, repo.listCalled)
	})

	t.Run("repo error passes through", func(t *testing.T) {
		repoErr := errors.New("list failed")
		repo := &fakeRepo{listErr: repoErr}
		service := NewService(repo)

		_, err := service.List(context.Background())

		require.ErrorIs(t, err, repoErr)
	})
}

func TestService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &fakeRepo{getItem: &Item{ID: 7, Name: "Widget"}}
		service := NewService(repo)

		item, err := service.Get(context.Background(), 7)

		require.NoError(t, err)
		require.NotNil(t, item)
		require.Equal(t, 7, repo.getID)
	})

	t.Run("not found is nil, not error", func(t *testing.T) {
		repo := &fakeRepo{}
		service := NewService(repo)

		item, err := service.Get(context.Background(), 999)

		require.NoError(t, err)
		require.Nil(t, item)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("empty input is valid and delegates", func(t *testing.T) {
		repo := &fakeRepo{updateItem: &Item{ID: 3, Name: "Widget"}}
		service := NewService(repo)

		item, err := service.Update(context.Background(), 3, UpdateItemInput{})

		require.NoError(t, err)
		require.True(t, repo.updateCalled)
		require.Equal(t, 3, repo.updateID)
		require.Equal(t, "Widget", item.Name)
	})

	t.Run("name provided but blank is invalid", func(t *testing.T) {
		repo := &fakeRepo{}
		service := NewService(repo)

		name := "   "
		_, err := service.Update(context.Background(), 3, UpdateItemInput{Name: &name})

		require.ErrorIs(t, err, ErrorInvalidInput)
		require.False(t, repo.updateCalled)
	})

	t.Run("name is trimmed before delegating", func(t *testing.T) {
		repo := &fakeRepo{updateItem: &Item{}}
		service := NewService(repo)

		name := "  Gadget  "
		_, err := service.Update(context.Background(), 3, UpdateItemInput{Name: &name})

		require.NoError(t, err)
		require.Equal(t, "Gadget", *repo.updateInput.Name)
	})

	t.Run("negative quantity is invalid", func(t *testing.T) {
		repo := &fakeRepo{}
		service := NewService(repo)

		quantity := -5
		_, err := service.Update(context.Background(), 3, UpdateItemInput{Quantity: &quantity})

		require.ErrorIs(t, err, ErrorInvalidInput)
	})

	t.Run("not found is nil, not error", func(t *testing.T) {
		repo := &fakeRepo{}
		service := NewService(repo)

		item, err := service.Update(context.Background(), 999, UpdateItemInput{})

		require.NoError(t, err)
		require.Nil(t, item)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		repo := &fakeRepo{deleteRemoved: true}
		service := NewService(repo)

		deleted, err := service.Delete(context.Background(), 4)

		require.NoError(t, err)
		require.True(t, deleted)
		require.Equal(t, 4, repo.deleteID)
	})

	t.Run("not found returns false, not error", func(t *testing.T) {
		repo := &fakeRepo{}
		service := NewService(repo)

		deleted, err := service.Delete(context.Background(), 999)

		require.NoError(t, err)
		require.False(t, deleted)
	})

	t.Run("repo error passes through", func(t *testing.T) {
		repoErr := errors.New("delete failed")
		repo := &fakeRepo{deleteErr: repoErr}
		service := NewService(repo)

		_, err := service.Delete(context.Background(), 4)

		require.ErrorIs(t, err, repoErr)
	})
}
