package utils

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	ebtypes "github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
)

var (
	ebClient   *eventbridge.Client
	ebInitOnce sync.Once
)

// PublishEvent publishes a bridge telemetry event to EventBridge.
// It is a no-op unless EVENT_BUS_NAME is configured.
func PublishEvent(ctx context.Context, requestID, eventType string, detail interface{}) error {
	busName := GetEventBusName()
	if busName == "" {
		return nil
	}

	ebInitOnce.Do(func() {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return
		}
		ebClient = eventbridge.NewFromConfig(cfg)
	})
	if ebClient == nil {
		return nil
	}

	detailJSON, err := json.Marshal(detail)
	if err != nil {
		return err
	}

	_, err = ebClient.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []ebtypes.PutEventsRequestEntry{
			{
				Source:       aws.String("gestorfamiliar.backend"),
				DetailType:   aws.String(eventType),
				Detail:       aws.String(string(detailJSON)),
				EventBusName: aws.String(busName),
				Resources:    []string{"request:" + requestID},
			},
		},
	})

	return err
}
