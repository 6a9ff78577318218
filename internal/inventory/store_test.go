// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/mock"
	"github.com/MKhiriev/go-box-keeper/internal/store"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSlotKey = "inventory"

// sequenceIDs hands out the given ids in order, repeating the last one.
type sequenceIDs struct {
	ids []string
	n   int
}

func (g *sequenceIDs) Generate() string {
	id := g.ids[min(g.n, len(g.ids)-1)]
	g.n++
	return id
}

func frozenClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestStore(t *testing.T, slots store.SlotStorage, opts ...Option) *Store {
	t.Helper()

	s, err := New(context.Background(), slots, testSlotKey, logger.Nop(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func toolsBox() models.NewBox {
	return models.NewBox{Name: "Tools", Location: "Shed", Category: models.CategoryTools, Color: models.ColorBlue}
}

func mustAddBox(t *testing.T, s *Store, nb models.NewBox) models.Box {
	t.Helper()
	box, err := s.AddBox(context.Background(), nb)
	require.NoError(t, err)
	return box
}

func mustAddItem(t *testing.T, s *Store, ni models.NewItem) models.Item {
	t.Helper()
	item, err := s.AddItem(context.Background(), ni)
	require.NoError(t, err)
	return item
}

func TestNew_MissingSlotKey(t *testing.T) {
	_, err := New(context.Background(), store.NewMemorySlotStorage(), "", logger.Nop())
	assert.ErrorIs(t, err, ErrMissingSlotKey)
}

func TestNew_AbsentSlotStartsEmpty(t *testing.T) {
	s := newTestStore(t, store.NewMemorySlotStorage())
	ctx := context.Background()

	boxes, err := s.Boxes(ctx)
	require.NoError(t, err)
	assert.Empty(t, boxes)
	assert.NotNil(t, boxes)

	items, err := s.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestScenario_ToolsInTheShed(t *testing.T) {
	s := newTestStore(t, store.NewMemorySlotStorage())
	ctx := context.Background()

	box := mustAddBox(t, s, toolsBox())

	boxes, _ := s.Boxes(ctx)
	items, _ := s.Items(ctx)
	total, _ := s.GetTotalItemCount(ctx)
	assert.Len(t, boxes, 1)
	assert.Empty(t, items)
	assert.Zero(t, total)

	mustAddItem(t, s, models.NewItem{BoxID: box.ID, Name: "Hammer", Quantity: 2})

	quantity, _ := s.GetBoxItemQuantity(ctx, box.ID)
	total, _ = s.GetTotalItemCount(ctx)
	assert.Equal(t, 2, quantity)
	assert.Equal(t, 2, total)

	touched, err := s.GetBoxByID(ctx, box.ID)
	require.NoError(t, err)
	assert.True(t, touched.UpdatedAt.After(touched.CreatedAt))

	require.NoError(t, s.DeleteBox(ctx, box.ID))

	inBox, _ := s.GetItemsByBoxID(ctx, box.ID)
	total, _ = s.GetTotalItemCount(ctx)
	assert.Empty(t, inBox)
	assert.Zero(t, total)
}

func TestStore_RoundTripThroughSlot(t *testing.T) {
	slots := store.NewMemorySlotStorage()
	ctx := context.Background()

	first, err := New(ctx, slots, testSlotKey, logger.Nop())
	require.NoError(t, err)

	garage := mustAddBox(t, first, models.NewBox{
		Name: "Winter Clothes", Description: "coats", Location: "Garage",
		Category: models.CategoryClothing, Color: "#123456",
	})
	shed := mustAddBox(t, first, toolsBox())
	value := decimal.RequireFromString("12.5")
	mustAddItem(t, first, models.NewItem{
		BoxID: garage.ID, Name: "Gloves", Quantity: 2, QuantityUnit: "pair",
		Description: "wool", PhotoURI: "file:///gloves.jpg", Value: &value,
	})
	mustAddItem(t, first, models.NewItem{BoxID: shed.ID, Name: "Hammer", Quantity: 1})
	require.NoError(t, first.Close(ctx))

	wantBoxes, _ := first.Boxes(ctx)
	wantItems, _ := first.Items(ctx)

	second := newTestStore(t, slots)
	gotBoxes, _ := second.Boxes(ctx)
	gotItems, _ := second.Items(ctx)

	assert.Equal(t, wantBoxes, gotBoxes)
	assert.Equal(t, wantItems, gotItems)
	assert.Equal(t, models.BoxColor("#123456"), gotBoxes[0].Color)
}

func TestStore_SnapshotFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	slots := mock.NewMockSlotStorage(ctrl)

	saved := make(chan []byte, 8)
	slots.EXPECT().Load(gomock.Any(), testSlotKey).Return(nil, store.ErrSlotNotFound)
	slots.EXPECT().Save(gomock.Any(), testSlotKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload []byte) error {
			saved <- payload
			return nil
		}).AnyTimes()
	slots.EXPECT().Close().Return(nil)

	s := newTestStore(t, slots)
	box := mustAddBox(t, s, toolsBox())
	require.NoError(t, s.Flush(context.Background()))

	var payload []byte
	for len(saved) > 0 {
		payload = <-saved
	}
	require.NotNil(t, payload)

	var raw map[string][]map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))
	require.Len(t, raw["boxes"], 1)
	assert.Empty(t, raw["items"])
	assert.Equal(t, box.ID, raw["boxes"][0]["id"])
	assert.Equal(t, box.QRCodeID, raw["boxes"][0]["qrCodeId"])
	assert.Equal(t, box.CreatedAt.Format(time.RFC3339Nano), raw["boxes"][0]["createdAt"])
}

func TestStore_MalformedSlotStartsEmpty(t *testing.T) {
	slots := store.NewMemorySlotStorage()
	ctx := context.Background()
	require.NoError(t, slots.Save(ctx, testSlotKey, []byte("{not json")))

	var buf bytes.Buffer
	s, err := New(ctx, slots, testSlotKey, logger.New(&buf, "test"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(ctx) })

	boxes, _ := s.Boxes(ctx)
	assert.Empty(t, boxes)
	assert.Contains(t, buf.String(), "stored inventory is malformed")

	mustAddBox(t, s, toolsBox())
	boxes, _ = s.Boxes(ctx)
	assert.Len(t, boxes, 1)
}

func TestStore_UnreadableSlotStartsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	slots := mock.NewMockSlotStorage(ctrl)
	slots.EXPECT().Load(gomock.Any(), testSlotKey).Return(nil, store.ErrSlotUnavailable)
	slots.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	slots.EXPECT().Close().Return(nil)

	s := newTestStore(t, slots)
	boxes, err := s.Boxes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, boxes)
}

func TestStore_SaveFailureKeepsMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	slots := mock.NewMockSlotStorage(ctrl)
	slots.EXPECT().Load(gomock.Any(), testSlotKey).Return(nil, store.ErrSlotNotFound)
	slots.EXPECT().Save(gomock.Any(), testSlotKey, gomock.Any()).Return(errors.New("disk full")).MinTimes(1)
	slots.EXPECT().Close().Return(nil)

	s := newTestStore(t, slots)
	ctx := context.Background()

	box, err := s.AddBox(ctx, toolsBox())
	require.NoError(t, err)
	require.NoError(t, s.Flush(ctx))

	got, err := s.GetBoxByID(ctx, box.ID)
	require.NoError(t, err)
	assert.Equal(t, box, got)
}

func TestStore_DropsOrphanedItemsOnLoad(t *testing.T) {
	slots := store.NewMemorySlotStorage()
	ctx := context.Background()
	blob := `{
		"boxes": [{"id": "b1", "name": "Books", "location": "Attic", "category": "Books",
			"color": "#E8F4FD", "qrCodeId": "BOX-B1", "createdAt": "2024-01-01T00:00:00Z",
			"updatedAt": "2024-01-01T00:00:00Z"}],
		"items": [
			{"id": "i1", "boxId": "b1", "name": "Atlas", "quantity": 1,
				"createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"},
			{"id": "i2", "boxId": "gone", "name": "Orphan", "quantity": 3,
				"createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"}
		]
	}`
	require.NoError(t, slots.Save(ctx, testSlotKey, []byte(blob)))

	s := newTestStore(t, slots)

	items, _ := s.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "i1", items[0].ID)

	total, _ := s.GetTotalItemCount(ctx)
	assert.Equal(t, 1, total)
}

func TestStore_NullCollectionsInSlot(t *testing.T) {
	slots := store.NewMemorySlotStorage()
	ctx := context.Background()
	require.NoError(t, slots.Save(ctx, testSlotKey, []byte(`{"boxes": null}`)))

	s := newTestStore(t, slots)
	boxes, _ := s.Boxes(ctx)
	items, _ := s.Items(ctx)
	assert.NotNil(t, boxes)
	assert.NotNil(t, items)
}

func TestStore_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	slots := mock.NewMockSlotStorage(ctrl)
	slots.EXPECT().Load(gomock.Any(), testSlotKey).Return(nil, store.ErrSlotNotFound)
	slots.EXPECT().Save(gomock.Any(), testSlotKey, gomock.Any()).Return(nil).Times(1)
	slots.EXPECT().Close().Return(nil).Times(1)

	ctx := context.Background()
	s, err := New(ctx, slots, testSlotKey, logger.Nop())
	require.NoError(t, err)

	mustAddBox(t, s, toolsBox())
	require.NoError(t, s.Close(ctx))
	require.NoError(t, s.Close(ctx))

	// kept in memory, not persisted
	mustAddBox(t, s, toolsBox())
	boxes, _ := s.Boxes(ctx)
	assert.Len(t, boxes, 2)
}

func TestStore_CloseReportsSlotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	slots := mock.NewMockSlotStorage(ctrl)
	slots.EXPECT().Load(gomock.Any(), testSlotKey).Return(nil, store.ErrSlotNotFound)
	slots.EXPECT().Close().Return(errors.New("connection reset"))

	s, err := New(context.Background(), slots, testSlotKey, logger.Nop())
	require.NoError(t, err)

	err = s.Close(context.Background())
	assert.ErrorContains(t, err, "connection reset")
}

func TestStore_ConcurrentAddBoxHonoursCapacity(t *testing.T) {
	s := newTestStore(t, store.NewMemorySlotStorage(), WithPolicy(config.Inventory{MaxBoxes: 10, MinQuantity: 1}))
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		rejected int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.AddBox(ctx, toolsBox()); errors.Is(err, ErrBoxCapacityExceeded) {
				mu.Lock()
				rejected++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	boxes, _ := s.Boxes(ctx)
	assert.Len(t, boxes, 10)
	assert.Equal(t, 40, rejected)

	codes := make(map[string]struct{})
	for _, b := range boxes {
		codes[b.QRCodeID] = struct{}{}
	}
	assert.Len(t, codes, 10)
}

func TestStore_UsesContextLogger(t *testing.T) {
	var buf bytes.Buffer
	s := newTestStore(t, store.NewMemorySlotStorage())
	ctx := logger.New(&buf, "request").Into(context.Background())

	_, err := s.AddBox(ctx, toolsBox())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "box added")
}
