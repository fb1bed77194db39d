package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotationMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAnnotationMemoryRepository()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = repo.Create(ctx, entities.Hotspot{ID: "hotspot-1", Label: "Filter", PartID: "part-102"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Hotspot{ID: "hotspot-2", Label: "Hose", PartID: "part-103"})
	require.NoError(t, err)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "hotspot-1", list[0].ID)

	list[0].Label = "tampered"
	again, _ := repo.List(ctx)
	assert.Equal(t, "Filter", again[0].Label)

	path, err := repo.GetImagePath(ctx)
	require.NoError(t, err)
	assert.Empty(t, path)

	require.NoError(t, repo.SetImagePath(ctx, "/uploads/1-diagram.png"))
	path, err = repo.GetImagePath(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1-diagram.png", path)
}

type fakeDynamo struct {
	tables  map[string][]map[string]types.AttributeValue
	putErr  error
	lastPut *dynamodb.PutItemInput
	pageLen int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string][]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	if f.putErr != nil {
		return nil, f.putErr
	}
	table := aws.ToString(in.TableName)
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	rows := f.tables[table]
	for i, row := range rows {
		if row["id"].(*types.AttributeValueMemberS).Value == id {
			rows[i] = in.Item
			return &dynamodb.PutItemOutput{}, nil
		}
	}
	f.tables[table] = append(rows, in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	for _, row := range f.tables[aws.ToString(in.TableName)] {
		if row["id"].(*types.AttributeValueMemberS).Value == id {
			return &dynamodb.GetItemOutput{Item: row}, nil
		}
	}
	return &dynamodb.GetItemOutput{}, nil
}

// Scan returns rows newest first and pages them so List has to follow
// LastEvaluatedKey and sort.
func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	rows := f.tables[aws.ToString(in.TableName)]
	reversed := make([]map[string]types.AttributeValue, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		reversed = append(reversed, rows[i])
	}

	start := 0
	if in.ExclusiveStartKey != nil {
		start = len(in.ExclusiveStartKey["offset"].(*types.AttributeValueMemberS).Value)
	}
	end := len(reversed)
	if f.pageLen > 0 && start+f.pageLen < end {
		end = start + f.pageLen
	}
	out := &dynamodb.ScanOutput{Items: reversed[start:end]}
	if end < len(reversed) {
		marker := make([]byte, end)
		for i := range marker {
			marker[i] = 'x'
		}
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"offset": &types.AttributeValueMemberS{Value: string(marker)},
		}
	}
	return out, nil
}

func TestAnnotationDynamoRepository_Hotspots(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	ddb.pageLen = 1
	repo := NewAnnotationDynamoRepository(ddb, "", "")

	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	step := 0
	repo.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	_, err := repo.Create(ctx, entities.Hotspot{ID: "hotspot-a", Label: "Filter", X: 0.1, Y: 0.25, Width: 0.05, Height: 0.5, PartID: "part-102"})
	require.NoError(t, err)
	assert.Equal(t, defaultHotspotsTableName, aws.ToString(ddb.lastPut.TableName))
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(ddb.lastPut.ConditionExpression))

	_, err = repo.Create(ctx, entities.Hotspot{ID: "hotspot-b", Label: "Hose", X: 1, Y: 0, Width: 1, Height: 1, PartID: "part-103"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entities.Hotspot{ID: "hotspot-a", Label: "Filter", X: 0.1, Y: 0.25, Width: 0.05, Height: 0.5, PartID: "part-102"}, list[0])
	assert.Equal(t, "hotspot-b", list[1].ID)

	ddb.putErr = errors.New("conditional check failed")
	_, err = repo.Create(ctx, entities.Hotspot{ID: "hotspot-a"})
	assert.Error(t, err)
}

func TestAnnotationDynamoRepository_DiagramImage(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewAnnotationDynamoRepository(ddb, "hs", "dg")

	path, err := repo.GetImagePath(ctx)
	require.NoError(t, err)
	assert.Empty(t, path)

	require.NoError(t, repo.SetImagePath(ctx, "/uploads/1-a.png"))
	require.NoError(t, repo.SetImagePath(ctx, "/uploads/2-b.png"))
	assert.Equal(t, "dg", aws.ToString(ddb.lastPut.TableName))
	assert.Len(t, ddb.tables["dg"], 1)

	path, err = repo.GetImagePath(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/2-b.png", path)
}
