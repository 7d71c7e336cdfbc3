package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestGetJSONHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := New(rdb, time.Minute)

	want := sample{Name: "Colombo Fort", Price: 15}
	raw, _ := json.Marshal(want)
	mock.ExpectGet(KeyActiveLocations).SetVal(string(raw))

	var got sample
	ok := c.GetJSON(context.Background(), KeyActiveLocations, &got)

	assert.True(t, ok)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJSONMissAndError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := New(rdb, time.Minute)

	mock.ExpectGet(KeyMasterPrices).RedisNil()

	var got sample
	assert.False(t, c.GetJSON(context.Background(), KeyMasterPrices, &got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJSONCorruptEntryDropped(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := New(rdb, time.Minute)

	mock.ExpectGet(KeyMasterPrices).SetVal("{not json")
	mock.ExpectDel(KeyMasterPrices).SetVal(1)

	var got sample
	assert.False(t, c.GetJSON(context.Background(), KeyMasterPrices, &got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAndInvalidate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := New(rdb, time.Minute)

	v := sample{Name: "Galle", Price: 25}
	raw, _ := json.Marshal(v)
	mock.ExpectSet(KeyActiveLocations, raw, time.Minute).SetVal("OK")
	mock.ExpectDel(KeyActiveLocations, KeyMasterPrices).SetVal(2)

	assert.NoError(t, c.SetJSON(context.Background(), KeyActiveLocations, v))
	assert.NoError(t, c.Invalidate(context.Background(), KeyActiveLocations, KeyMasterPrices))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNilClientIsPermanentMiss(t *testing.T) {
	c := New(nil, time.Minute)
	var got sample
	assert.False(t, c.GetJSON(context.Background(), KeyMasterPrices, &got))
	assert.NoError(t, c.SetJSON(context.Background(), KeyMasterPrices, got))
	assert.NoError(t, c.Invalidate(context.Background(), KeyMasterPrices))
}
