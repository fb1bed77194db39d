package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHotspotsTableName = "hotspots"
	defaultDiagramsTableName = "diagrams"

	// currentDiagramID is the single row of the diagrams table.
	currentDiagramID = "current"

	// createdAtLayout is fixed width so created_at sorts lexically.
	createdAtLayout = "2006-01-02T15:04:05.000000000Z"
)

// DynamoDBAPI is the subset of *dynamodb.Client the annotation store uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type hotspotItem struct {
	ID        string `dynamodbav:"id"`
	Label     string `dynamodbav:"label"`
	X         string `dynamodbav:"x"`
	Y         string `dynamodbav:"y"`
	Width     string `dynamodbav:"width"`
	Height    string `dynamodbav:"height"`
	PartID    string `dynamodbav:"part_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

type diagramItem struct {
	ID        string `dynamodbav:"id"`
	ImagePath string `dynamodbav:"image_path"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// AnnotationDynamoRepository persists hotspots and the diagram image path in
// DynamoDB.
//
// Table requirements:
//   - hotspots: PK id (string)
//   - diagrams: PK id (string), single item "current"
//
// Scan returns items unordered; List sorts by created_at to keep creation order.
type AnnotationDynamoRepository struct {
	ddb           DynamoDBAPI
	hotspotsTable string
	diagramsTable string
	now           func() time.Time
}

var (
	_ interfaces.IHotspotRepository = (*AnnotationDynamoRepository)(nil)
	_ interfaces.IDiagramRepository = (*AnnotationDynamoRepository)(nil)
)

func NewAnnotationDynamoRepository(ddb DynamoDBAPI, hotspotsTable, diagramsTable string) *AnnotationDynamoRepository {
	if hotspotsTable == "" {
		hotspotsTable = defaultHotspotsTableName
	}
	if diagramsTable == "" {
		diagramsTable = defaultDiagramsTableName
	}
	return &AnnotationDynamoRepository{
		ddb:           ddb,
		hotspotsTable: hotspotsTable,
		diagramsTable: diagramsTable,
		now:           time.Now,
	}
}

func (r *AnnotationDynamoRepository) Create(ctx context.Context, h entities.Hotspot) (entities.Hotspot, error) {
	av, err := attributevalue.MarshalMap(toHotspotItem(h, r.now()))
	if err != nil {
		return entities.Hotspot{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.hotspotsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Hotspot{}, err
	}
	return h, nil
}

func (r *AnnotationDynamoRepository) List(ctx context.Context) ([]entities.Hotspot, error) {
	var items []hotspotItem
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.hotspotsTable),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it hotspotItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt < items[j].CreatedAt
	})
	hotspots := make([]entities.Hotspot, 0, len(items))
	for _, it := range items {
		hotspots = append(hotspots, fromHotspotItem(it))
	}
	return hotspots, nil
}

func (r *AnnotationDynamoRepository) GetImagePath(ctx context.Context) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.diagramsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: currentDiagramID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it diagramItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.ImagePath, nil
}

func (r *AnnotationDynamoRepository) SetImagePath(ctx context.Context, path string) error {
	av, err := attributevalue.MarshalMap(diagramItem{
		ID:        currentDiagramID,
		ImagePath: path,
		UpdatedAt: r.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.diagramsTable),
		Item:      av,
	})
	return err
}

func toHotspotItem(h entities.Hotspot, createdAt time.Time) hotspotItem {
	return hotspotItem{
		ID:        h.ID,
		Label:     h.Label,
		X:         floatToString(h.X),
		Y:         floatToString(h.Y),
		Width:     floatToString(h.Width),
		Height:    floatToString(h.Height),
		PartID:    h.PartID,
		CreatedAt: createdAt.UTC().Format(createdAtLayout),
	}
}

func fromHotspotItem(it hotspotItem) entities.Hotspot {
	return entities.Hotspot{
		ID:     it.ID,
		Label:  it.Label,
		X:      parseFloat(it.X),
		Y:      parseFloat(it.Y),
		Width:  parseFloat(it.Width),
		Height: parseFloat(it.Height),
		PartID: it.PartID,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
