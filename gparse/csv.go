package gparse

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	raman "github.com/ramanchem/goraman"
)

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

//ModesFromCSV reads a CSV file of frequency,intensity pairs, one mode per
//line, and returns the mode table. Lines whose first two fields are not both
//numeric (headers, comments) are skipped. The modes carry no displacements,
//so the table can be broadened and combined but not matched.
func ModesFromCSV(filename string) (*raman.ModeTable, error) {
	fin, err := openLog(filename)
	if err != nil {
		return nil, errDecorate(err, "ModesFromCSV")
	}
	defer fin.Close()
	modes := []*raman.Mode{}
	scanner := bufio.NewScanner(fin)
	for scanner.Scan() {
		fields := strings.Split(strings.TrimSpace(scanner.Text()), ",")
		if len(fields) < 2 || !isNumeric(fields[0]) || !isNumeric(fields[1]) {
			continue
		}
		f, _ := strconv.ParseFloat(fields[0], 64)
		in, _ := strconv.ParseFloat(fields[1], 64)
		modes = append(modes, &raman.Mode{Frequency: f, Intensity: in})
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{raman.ErrWrongFormat, err.Error(), filename, []string{"ModesFromCSV"}, true}
	}
	if len(modes) == 0 {
		return nil, Error{raman.ErrNoFrequencies, "no frequency-intensity pairs found", filename, []string{"ModesFromCSV"}, true}
	}
	table, err := raman.NewModeTable(modes)
	if err != nil {
		return nil, errDecorate(err, "ModesFromCSV")
	}
	return table, nil
}

//DistMatrixFromCSV reads a lower-triangular distance matrix from a CSV file:
//the first data line has one entry, the second two, and so on. Trailing empty
//fields are tolerated; any other break of the ascending-length rule is an
//error.
func DistMatrixFromCSV(filename string) (*raman.DistanceMatrix, error) {
	fin, err := openLog(filename)
	if err != nil {
		return nil, errDecorate(err, "DistMatrixFromCSV")
	}
	defer fin.Close()
	rows := [][]float64{}
	scanner := bufio.NewScanner(fin)
	for scanner.Scan() {
		fields := strings.Split(strings.TrimSpace(scanner.Text()), ",")
		for len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
			fields = fields[:len(fields)-1]
		}
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(rows)+1 {
			return nil, Error{raman.ErrWrongFormat, fmt.Sprintf("data line %d has %d entries, want %d: lines must come in ascending length", len(rows)+1, len(fields), len(rows)+1), filename, []string{"DistMatrixFromCSV"}, true}
		}
		row := make([]float64, len(fields))
		for i, v := range fields {
			row[i], err = strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, Error{raman.ErrWrongFormat, fmt.Sprintf("non-numeric entry %q", v), filename, []string{"DistMatrixFromCSV"}, true}
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{raman.ErrWrongFormat, err.Error(), filename, []string{"DistMatrixFromCSV"}, true}
	}
	ret, err := raman.DistanceMatrixFromRows(rows)
	if err != nil {
		return nil, errDecorate(err, "DistMatrixFromCSV")
	}
	return ret, nil
}
