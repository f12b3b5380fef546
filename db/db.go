package db

import (
	"errors"

	"github.com/abhi9vaidya/Guitariz-sub000/constants"
	"github.com/abhi9vaidya/Guitariz-sub000/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// uniqueQualities drops repeats while preserving first-seen order.
// BatchGetItem rejects a request whose key list contains duplicates, and
// candidate lists routinely repeat a quality (e.g. Major at two roots).
func uniqueQualities(qualities []string) []string {
	seen := make(map[string]bool)
	var res []string
	for _, quality := range qualities {
		if seen[quality] {
			continue
		}
		seen[quality] = true
		res = append(res, quality)
	}
	return res
}

// GetChordMetadatas fetches enrichment records for chord qualities, e.g.
// "Minor 7". Returns an empty map when no metadata endpoint is configured;
// qualities without a record are simply absent from the result.
func GetChordMetadatas(qualities []string) (map[string]model.ChordMetadata, error) {
	res := make(map[string]model.ChordMetadata)

	endpoint := constants.GetMetadataEndpoint()
	if endpoint == "" || len(qualities) == 0 {
		return res, nil
	}

	qualities = uniqueQualities(qualities)

	// BatchGetItem caps at 100 items but candidate lists are tiny anyway
	if len(qualities) > 10 {
		qualities = qualities[:10]
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, quality := range qualities {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(quality),
		}
		keys = append(keys, key)
	}

	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return res, errors.New("could not create a DynamoDB session: " + err.Error())
	}

	table := constants.GetMetadataTable()
	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return res, errors.New("error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[table] {
		var m model.ChordMetadata
		m.Quality = *v["PK"].S
		if v["Description"] != nil && v["Description"].S != nil {
			m.Description = *v["Description"].S
		}
		if v["CommonUse"] != nil && v["CommonUse"].S != nil {
			m.CommonUse = *v["CommonUse"].S
		}
		res[m.Quality] = m
	}

	return res, nil
}
