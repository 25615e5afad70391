package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.db")

	for i := range 2 {
		db, err := OpenSQLite(path)
		require.NoError(t, err, "open %d", i)

		var version int
		require.NoError(t, db.QueryRow("PRAGMA user_version").Scan(&version))
		assert.Equal(t, sqliteSchemaVersion, version)

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM kv_entries").Scan(&count))
		require.NoError(t, db.Close())
	}
}

func TestSQLitePath(t *testing.T) {
	t.Setenv("SQLITE_PATH", "")
	assert.Equal(t, "my_trip.db", SQLitePath())
	t.Setenv("SQLITE_PATH", "/tmp/other.db")
	assert.Equal(t, "/tmp/other.db", SQLitePath())
}

type fakeTableAPI struct {
	describeErr error
	createErr   error
	created     *dynamodb.CreateTableInput
}

func (f *fakeTableAPI) DescribeTable(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	return &dynamodb.DescribeTableOutput{}, nil
}

func (f *fakeTableAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureKVTable(t *testing.T) {
	ctx := context.Background()

	t.Run("existing table", func(t *testing.T) {
		api := &fakeTableAPI{}
		require.NoError(t, EnsureKVTable(ctx, api, "my_trip_kv"))
		assert.Nil(t, api.created)
	})

	t.Run("missing table is created", func(t *testing.T) {
		api := &fakeTableAPI{describeErr: &types.ResourceNotFoundException{}}
		require.NoError(t, EnsureKVTable(ctx, api, "my_trip_kv"))
		require.NotNil(t, api.created)
		assert.Equal(t, "my_trip_kv", *api.created.TableName)
		assert.Equal(t, "key", *api.created.KeySchema[0].AttributeName)
		assert.Equal(t, types.BillingModePayPerRequest, api.created.BillingMode)
	})

	t.Run("concurrent create is accepted", func(t *testing.T) {
		api := &fakeTableAPI{
			describeErr: &types.ResourceNotFoundException{},
			createErr:   &smithy.GenericAPIError{Code: "ResourceInUseException", Message: "exists"},
		}
		assert.NoError(t, EnsureKVTable(ctx, api, "my_trip_kv"))
	})

	t.Run("describe failure", func(t *testing.T) {
		api := &fakeTableAPI{describeErr: errors.New("access denied")}
		err := EnsureKVTable(ctx, api, "my_trip_kv")
		assert.ErrorContains(t, err, "access denied")
		assert.Nil(t, api.created)
	})
}
