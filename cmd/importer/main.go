package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Sube un CSV de catálogo al endpoint de importación y muestra los contadores
// que devuelve el servidor.
func main() {
	var (
		filePath string
		apiURL   string
	)

	rootCmd := &cobra.Command{
		Use:   "importer",
		Short: "Importa productos e ítems de almacén desde un CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("leer archivo: %w", err)
			}

			body, err := json.Marshal(map[string]string{"csv": string(raw)})
			if err != nil {
				return err
			}

			client := &http.Client{Timeout: 2 * time.Minute}
			resp, err := client.Post(apiURL+"/api/products/import", "application/json", bytes.NewReader(body))
			if err != nil {
				return fmt.Errorf("enviar importación: %w", err)
			}
			defer resp.Body.Close()

			payload, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("leer respuesta: %w", err)
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("el servidor respondió %d: %s", resp.StatusCode, payload)
			}

			var result struct {
				InsertedProducts int `json:"insertedProducts"`
				UpdatedProducts  int `json:"updatedProducts"`
				InsertedItems    int `json:"insertedItems"`
				UpdatedItems     int `json:"updatedItems"`
				SkippedRows      int `json:"skippedRows"`
			}
			if err := json.Unmarshal(payload, &result); err != nil {
				return fmt.Errorf("respuesta inesperada: %s", payload)
			}

			fmt.Printf("productos: %d nuevos, %d actualizados\n", result.InsertedProducts, result.UpdatedProducts)
			fmt.Printf("ítems:     %d nuevos, %d actualizados\n", result.InsertedItems, result.UpdatedItems)
			fmt.Printf("filas omitidas: %d\n", result.SkippedRows)
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "ruta del CSV a importar")
	rootCmd.Flags().StringVarP(&apiURL, "api", "a", "http://localhost:8080", "URL base de la API")
	_ = rootCmd.MarkFlagRequired("file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
