// Package assets holds the fixed background and font registries the card
// generator draws from. Order is significant: backgrounds are addressed by
// index from persisted favorites, so entries must never be reordered.
package assets

import "math/rand"

// Backgrounds is the ordered background image manifest.
var Backgrounds = []string{
	"ahmet-kagan-hancer-FFhJCVaFuO0-unsplash.jpg",
	"alexandr-hovhannisyan-x690jpFNMHE-unsplash.jpg",
	"andrew-lancaster-9lWLanbynH0-unsplash.jpg",
	"annie-spratt-Ufa495Wz0x8-unsplash.jpg",
	"annie-spratt-wuc-KEIBrdE-unsplash.jpg",
	"ashkan-forouzani-sWui4HlGXiI-unsplash.jpg",
	"ashkan-forouzani-xiHAseekqqw-unsplash.jpg",
	"ayse-bek-YLdYVzHopto-unsplash.jpg",
	"birmingham-museums-trust-BPWZ01FtySg-unsplash.jpg",
	"boim-H_6zuSsHMNo-unsplash.jpg",
	"daniel-burka-oR9ZisoF_NE-unsplash.jpg",
	"daniel-olah-2lMK4dgqwFM-unsplash.jpg",
	"ekrem-osmanoglu-FLFjAn3gQI8-unsplash.jpg",
	"fahrul-azmi-5K549TS6F08-unsplash.jpg",
	"fahrul-azmi-gyKmF0vnfBs-unsplash.jpg",
	"fatih-yurur-kNSREmtaGOE-unsplash.jpg",
	"girl-with-red-hat-YQXLO2cvjYg-unsplash.jpg",
	"haidan-Qec3HPaHWTI-unsplash.jpg",
	"hasan-almasi-6M3_19hsDaw-unsplash.jpg",
	"hasan-almasi-n-BplEBjZfc-unsplash.jpg",
	"huilin-dai-yI_c35jgxYI-unsplash.jpg",
	"hushaan-fromtinyisles-EWtprB5HAL0-unsplash.jpg",
	"imad-alassiry-QyE_fgU2Ofs-unsplash.jpg",
	"imad-alassiry-kbqiX4da1fA-unsplash.jpg",
	"isak-gundrosen-dVCivGs0bj0-unsplash.jpg",
	"ishan-seefromthesky-66Tu10CxYY0-unsplash.jpg",
	"izuddin-helmi-adnan-JFirQekVo3U-unsplash.jpg",
	"izuddin-helmi-adnan-onh-FdFUyeM-unsplash.jpg",
	"jonathan-takle-6-LA_PIySJ4-unsplash.jpg",
	"juan-camilo-guarin-p-QWByC_hnf64-unsplash.jpg",
	"kareem-saleh-SpW9xtgGokM-unsplash.jpg",
	"levi-meir-clancy-11pYd78qMwY-unsplash.jpg",
	"masjid-pogung-dalangan-QOkrWM-WtOg-unsplash.jpg",
	"mayur-k8oak9BhX7M-unsplash.jpg",
	"mosquegrapher-uouvblwaQs4-unsplash.jpg",
	"muhammad-irfan-baloch-QEcvxkXWp0c-unsplash.jpg",
	"muhammed-a-mustapha-aaIsU06zWrg-unsplash.jpg",
	"muhsin-ck-8BcNsqDJy2I-unsplash.jpg",
	"nick-fewings-F_RkoI39JX4-unsplash.jpg",
	"nick-fewings-ZcBY_mxVBCE-unsplash.jpg",
	"nouman-younas-6Ppkk8rIhvk-unsplash.jpg",
	"raimond-klavins-SyPG3HSSayY-unsplash.jpg",
	"rawan-yasser-Y-joaXX7XCQ-unsplash.jpg",
	"rizky-andar-7FldJVOe2DM-unsplash.jpg",
	"rumman-amin-i1bfxi1cFBY-unsplash.jpg",
	"ryan-miglinczy-fQtFfvedV-8-unsplash.jpg",
	"sebastian-yepes-3NTpsPyFZlQ-unsplash.jpg",
	"sheraz-nazar-KfpTd2B5vV4-unsplash.jpg",
	"sheraz-nazar-XTx8EaDgrXw-unsplash.jpg",
	"sidik-kurniawan-hiFpJqA4FcE-unsplash.jpg",
	"sinan-toy-s8xjo4yjnHc-unsplash.jpg",
	"untung-bekti-nugroho-6Aa4EeZTdqw-unsplash.jpg",
	"vincent-marcini-c1QVYdg5_io-unsplash.jpg",
	"yasmine-arfaoui-R6rh5ttDO-4-unsplash.jpg",
	"zosia-szopka-j5HQf4MpXZQ-unsplash.jpg",
}

// FontIDs lists the font table keys in their fixed order.
var FontIDs = []string{
	"KFGQPCNastaleeq",
	"QCF_SurahHeader",
	"UthmanicHafs_V22",
	"DefaultFont",
	"MeQuran",
	"QuranCommon",
	"SurahName_V1",
	"SurahName_V2",
	"SurahName_V4",
	"Uthmanic_V13",
}

// FontFiles maps a font id to its file name under the fonts directory.
var FontFiles = map[string]string{
	"KFGQPCNastaleeq":  "KFGQPCNastaleeq-Regular.ttf",
	"QCF_SurahHeader":  "QCF_SurahHeader_COLOR-Regular.ttf",
	"UthmanicHafs_V22": "UthmanicHafs_V22.ttf",
	"DefaultFont":      "font.ttf",
	"MeQuran":          "me_quran_volt_newmet.ttf",
	"QuranCommon":      "quran-common.ttf",
	"SurahName_V1":     "surah-name-v1.ttf",
	"SurahName_V2":     "surah-name-v2.ttf",
	"SurahName_V4":     "surah-name-v4.ttf",
	"Uthmanic_V13":     "uthmanic_hafs1_ver13.otf",
}

// RandomBackground picks a background uniformly and returns its ref and index.
func RandomBackground(rng *rand.Rand) (string, int) {
	i := rng.Intn(len(Backgrounds))
	return Backgrounds[i], i
}

// BackgroundByIndex resolves an index to a background ref, wrapping like the
// original manifest accessor so stale indexes stay displayable.
func BackgroundByIndex(i int) string {
	if i < 0 {
		i = -i
	}
	return Backgrounds[i%len(Backgrounds)]
}

// ValidBackgroundIndex reports whether i addresses the manifest directly.
func ValidBackgroundIndex(i int) bool {
	return i >= 0 && i < len(Backgrounds)
}

// RandomFont picks a font id uniformly at random.
func RandomFont(rng *rand.Rand) string {
	return FontIDs[rng.Intn(len(FontIDs))]
}

// ValidFont reports whether id is a key of the font table.
func ValidFont(id string) bool {
	_, ok := FontFiles[id]
	return ok
}
