package steps

import (
	"fmt"
	"net/http"
	"regexp"
)

// Work order step implementations
func (fc *FeatureContext) iOpenAWorkOrderTitled(orderType, title string) error {
	resp, err := fc.apiDriver.CreateWorkOrder(fc.condominiumID, fc.assetID, title, orderType)
	fc.require.NoError(err)
	fc.response = resp

	if resp.StatusCode == http.StatusCreated {
		var data map[string]any
		err = fc.decodeBody(resp.Body, &data)
		fc.require.NoError(err)
		fc.workOrderID = data["id"].(string)
		fc.workOrderNumbers = append(fc.workOrderNumbers, data["numero_os"].(string))
	}
	return nil
}

func (fc *FeatureContext) anOpenWorkOrderTitledExists(title string) error {
	resp, err := fc.apiDriver.CreateWorkOrder(fc.condominiumID, fc.assetID, title, "corretiva")
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.workOrderID = data["id"].(string)
	fc.workOrderNumbers = append(fc.workOrderNumbers, data["numero_os"].(string))
	return nil
}

func (fc *FeatureContext) theWorkOrderNumberShouldMatch(pattern string) error {
	fc.require.NotEmpty(fc.workOrderNumbers)
	lastNumber := fc.workOrderNumbers[len(fc.workOrderNumbers)-1]
	matched, err := regexp.MatchString(pattern, lastNumber)
	fc.require.NoError(err)
	fc.require.True(matched, fmt.Sprintf("number %s does not match %s", lastNumber, pattern))
	return nil
}

func (fc *FeatureContext) theWorkOrderNumbersShouldBeSequential() error {
	fc.require.GreaterOrEqual(len(fc.workOrderNumbers), 2)

	sequencePattern := regexp.MustCompile(`^OS-(\d{4})-(\d{4})$`)
	var previous int
	for i, number := range fc.workOrderNumbers {
		parts := sequencePattern.FindStringSubmatch(number)
		fc.require.NotNil(parts, fmt.Sprintf("number %s is malformed", number))

		var sequence int
		_, err := fmt.Sscanf(parts[2], "%d", &sequence)
		fc.require.NoError(err)

		if i > 0 {
			fc.require.Equal(previous+1, sequence, "numbers must be consecutive")
		}
		previous = sequence
	}
	return nil
}

func (fc *FeatureContext) iTransitionTheWorkOrderTo(status string) error {
	resp, err := fc.apiDriver.TransitionWorkOrder(fc.workOrderID, status, "transicao de teste")
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theWorkOrderStatusShouldBe(status string) error {
	resp, err := fc.apiDriver.GetWorkOrder(fc.workOrderID)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(status, data["status"])
	return nil
}

func (fc *FeatureContext) iGetTheWorkOrderLogs() error {
	resp, err := fc.apiDriver.GetWorkOrderLogs(fc.workOrderID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theLogShouldContainEntries(expected int) error {
	var entries []map[string]any
	err := fc.decodeBody(fc.response.Body, &entries)
	fc.require.NoError(err)
	fc.require.Len(entries, expected)
	return nil
}
