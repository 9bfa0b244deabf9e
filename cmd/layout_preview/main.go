// layout_preview 在终端中预览状态图标网格布局
//
// 用法:
//
//	layout_preview slots --layout data/state_icons.yaml
//	layout_preview pages --icons 14 --set RowMax=2 --set IconsAlign=縦
//	layout_preview export --layout my_layout.yaml
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gonewx/stateicons/pkg/app"
	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/game"
)

var (
	layoutFile string
	params     map[string]string
	anchorX    float64
	anchorY    float64
	iconCount  int
	appName    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "layout_preview",
		Short: "preview the battle state icon grid layout",
	}
	rootCmd.PersistentFlags().StringVar(&layoutFile, "layout", "", "path to layout YAML file (defaults to built-in layout)")
	rootCmd.PersistentFlags().StringToStringVar(&params, "set", nil, "plugin parameter override, e.g. --set RowMax=2")

	slotsCmd := &cobra.Command{
		Use:   "slots",
		Short: "print the screen position of every grid slot",
		RunE:  runSlots,
	}
	slotsCmd.Flags().Float64Var(&anchorX, "anchor-x", 0, "x of the single state icon (grid anchor)")
	slotsCmd.Flags().Float64Var(&anchorY, "anchor-y", 0, "y of the single state icon (grid anchor)")

	pagesCmd := &cobra.Command{
		Use:   "pages",
		Short: "render every page the grid cycles through for a number of icons",
		RunE:  runPages,
	}
	pagesCmd.Flags().IntVar(&iconCount, "icons", 14, "number of icons on the battler")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "store the layout as plugin parameters for the game to pick up",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&appName, "app", app.DefaultAppName, "storage app name")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print the stored plugin parameters",
		RunE:  runShow,
	}
	showCmd.Flags().StringVar(&appName, "app", app.DefaultAppName, "storage app name")

	rootCmd.AddCommand(slotsCmd, pagesCmd, exportCmd, showCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadLayout 读取布局文件（未指定时使用默认布局）并应用 --set 参数
func loadLayout() (*config.StateIconLayout, error) {
	layout := config.DefaultStateIconLayout()
	if layoutFile != "" {
		data, err := os.ReadFile(layoutFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read layout file %s: %w", layoutFile, err)
		}
		layout, err = config.ParseStateIconLayout(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse layout file %s: %w", layoutFile, err)
		}
	}
	if len(params) > 0 {
		layout = config.ApplyStateIconParameters(layout, params)
	}
	return layout, nil
}

func runSlots(cmd *cobra.Command, args []string) error {
	layout, err := loadLayout()
	if err != nil {
		return err
	}
	fmt.Print(FormatSlots(layout, anchorX, anchorY))
	return nil
}

func runPages(cmd *cobra.Command, args []string) error {
	if iconCount < 0 {
		return fmt.Errorf("--icons cannot be negative, got %d", iconCount)
	}
	layout, err := loadLayout()
	if err != nil {
		return err
	}
	fmt.Printf("%d icons, %d per page, change every %d frames\n\n", iconCount, layout.MaxIcons(), layout.ChangeSpan)
	fmt.Println(RenderPages(DefaultStyles(), layout, iconCount))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	layout, err := loadLayout()
	if err != nil {
		return err
	}
	store, err := game.OpenParameterStore(appName)
	if err != nil {
		return err
	}
	if err := store.Save(layout.Parameters()); err != nil {
		return err
	}
	fmt.Printf("stored %d plugin parameters for %s\n", len(layout.Parameters()), appName)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := game.OpenParameterStore(appName)
	if err != nil {
		return err
	}
	stored, err := store.Load()
	if err != nil {
		return err
	}
	if stored == nil {
		fmt.Println("no stored plugin parameters")
		return nil
	}

	keys := make([]string, 0, len(stored))
	for k := range stored {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-15s %s\n", k, stored[k])
	}
	return nil
}
