// Package db persists analyses to DynamoDB.
package db

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/harmonfunc/constants"
	"github.com/jsphweid/harmonfunc/model"
)

type Store struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewStore(client dynamodbiface.DynamoDBAPI, table string) *Store {
	return &Store{client: client, table: table}
}

// NewStoreFromEnv connects to the configured region, endpoint and table.
func NewStoreFromEnv() (*Store, error) {
	cfg := &aws.Config{Region: aws.String(constants.GetRegion())}
	if endpoint := constants.GetDynamoEndpoint(); endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create a new DynamoDB session: %w", err)
	}
	return NewStore(dynamodb.New(sess), constants.GetDynamoTable()), nil
}

func (s *Store) PutAnalysis(a model.Analysis) error {
	item, err := dynamodbattribute.MarshalMap(a)
	if err != nil {
		return fmt.Errorf("could not marshal analysis %s: %w", a.ID, err)
	}
	_, err = s.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("error from DynamoDB: %w", err)
	}
	return nil
}

func (s *Store) GetAnalysis(id string) (model.Analysis, bool, error) {
	var a model.Analysis
	res, err := s.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	})
	if err != nil {
		return a, false, fmt.Errorf("error from DynamoDB: %w", err)
	}
	if len(res.Item) == 0 {
		return a, false, nil
	}
	if err := dynamodbattribute.UnmarshalMap(res.Item, &a); err != nil {
		return a, false, fmt.Errorf("could not unmarshal analysis %s: %w", id, err)
	}
	return a, true, nil
}

// ScanAnalyses reads every stored analysis, following pagination. A non-empty runID
// limits the result to one run.
func (s *Store) ScanAnalyses(runID string) ([]model.Analysis, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(s.table)}
	if runID != "" {
		input.FilterExpression = aws.String("run_id = :run")
		input.ExpressionAttributeValues = map[string]*dynamodb.AttributeValue{
			":run": {S: aws.String(runID)},
		}
	}

	var res []model.Analysis
	var unmarshalErr error
	err := s.client.ScanPages(input, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		var batch []model.Analysis
		if err := dynamodbattribute.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			unmarshalErr = err
			return false
		}
		res = append(res, batch...)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %w", err)
	}
	if unmarshalErr != nil {
		return nil, fmt.Errorf("could not unmarshal analyses: %w", unmarshalErr)
	}
	return res, nil
}
